// SPDX-License-Identifier: MIT
// File: registry.go
// Role: Bidirectional label ↔ dense-index mapping.
// Invariants:
//   - labels[index[x]] == x for every registered x.
//   - len(labels) == len(index); no duplicates.
//   - Grows only through Append; never shrinks.

package labelled

import (
	"errors"
	"fmt"
)

// Registry owns the ordered label sequence and its reverse index.
// Dense indices are 0-based: the i-th registered label has index i.
type Registry[T comparable] struct {
	labels []T
	index  map[T]int
}

// NewRegistry builds a registry over labels for a backing graph holding
// vertexCount vertices. The input slice is copied.
//
// Implementation:
//   - Stage 1: Scan labels once, building the reverse map and noting the first repeat.
//   - Stage 2: Compare len(labels) with vertexCount.
//   - Stage 3: If any check failed, return every violated sentinel joined together.
//
// Errors:
//   - ErrDuplicateLabel when a label repeats (reported regardless of arity).
//   - ErrArityMismatch when len(labels) != vertexCount.
//     Both are returned (errors.Join) when both hold.
//
// Complexity: O(n) time and space.
func NewRegistry[T comparable](labels []T, vertexCount int) (*Registry[T], error) {
	index := make(map[T]int, len(labels))
	var errs []error
	for i, l := range labels {
		if j, dup := index[l]; dup {
			errs = append(errs, fmt.Errorf("label %v at positions %d and %d: %w", l, j, i, ErrDuplicateLabel))
			break
		}
		index[l] = i
	}
	if len(labels) != vertexCount {
		errs = append(errs, fmt.Errorf("%d labels for %d vertices: %w", len(labels), vertexCount, ErrArityMismatch))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	own := make([]T, len(labels))
	copy(own, labels)

	return &Registry[T]{labels: own, index: index}, nil
}

// Len returns the number of registered labels. O(1).
func (r *Registry[T]) Len() int { return len(r.labels) }

// Contains reports whether label is registered. O(1).
func (r *Registry[T]) Contains(label T) bool {
	_, ok := r.index[label]
	return ok
}

// IndexOf returns the dense index of label, or ErrUnknownLabel.
// Complexity: O(1).
func (r *Registry[T]) IndexOf(label T) (int, error) {
	i, ok := r.index[label]
	if !ok {
		return 0, fmt.Errorf("%v: %w", label, ErrUnknownLabel)
	}

	return i, nil
}

// LabelOf returns the label at index i. The index must come from this
// registry (or its backing graph); out-of-range indices panic like a slice access.
func (r *Registry[T]) LabelOf(i int) T { return r.labels[i] }

// Labels returns a copy of the label sequence in index order.
func (r *Registry[T]) Labels() []T {
	out := make([]T, len(r.labels))
	copy(out, r.labels)

	return out
}

// Append registers label at the next free index and returns that index.
// The duplicate check runs before any mutation.
//
// Errors:
//   - ErrDuplicateLabel if label is already registered.
//
// Complexity: O(1) amortized.
func (r *Registry[T]) Append(label T) (int, error) {
	if j, dup := r.index[label]; dup {
		return 0, fmt.Errorf("%v already at index %d: %w", label, j, ErrDuplicateLabel)
	}
	i := len(r.labels)
	r.labels = append(r.labels, label)
	r.index[label] = i

	return i, nil
}

// checkFresh verifies that batch can be appended as a whole: no element is
// registered already and no element repeats inside the batch.
func (r *Registry[T]) checkFresh(batch []T) error {
	seen := make(map[T]struct{}, len(batch))
	for _, l := range batch {
		if j, dup := r.index[l]; dup {
			return fmt.Errorf("%v already at index %d: %w", l, j, ErrDuplicateLabel)
		}
		if _, dup := seen[l]; dup {
			return fmt.Errorf("%v repeated in batch: %w", l, ErrDuplicateLabel)
		}
		seen[l] = struct{}{}
	}

	return nil
}

// translate maps every label to its index, failing on the first unknown one.
func (r *Registry[T]) translate(labels []T) ([]int, error) {
	out := make([]int, len(labels))
	for i, l := range labels {
		idx, err := r.IndexOf(l)
		if err != nil {
			return nil, err
		}
		out[i] = idx
	}

	return out, nil
}

// lookup maps indices back to labels.
func (r *Registry[T]) lookup(idx []int) []T {
	out := make([]T, len(idx))
	for i, v := range idx {
		out[i] = r.labels[v]
	}

	return out
}
