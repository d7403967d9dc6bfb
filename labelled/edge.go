// SPDX-License-Identifier: MIT

package labelled

import "fmt"

// Edge is an ordered label pair. It is a plain value: not owned by any graph,
// comparable with ==, and order-sensitive even when used against an undirected
// graph (undirected backends simply report both orientations as present).
type Edge[T comparable] struct {
	// Src is the source label.
	Src T

	// Dst is the destination label.
	Dst T
}

// NewEdge returns the edge src → dst.
func NewEdge[T comparable](src, dst T) Edge[T] {
	return Edge[T]{Src: src, Dst: dst}
}

// Reverse returns dst → src.
func (e Edge[T]) Reverse() Edge[T] {
	return Edge[T]{Src: e.Dst, Dst: e.Src}
}

// String renders the edge as "src -> dst".
func (e Edge[T]) String() string {
	return fmt.Sprintf("%v -> %v", e.Src, e.Dst)
}
