// SPDX-License-Identifier: MIT
// File: host.go
// Role: Subject validation and delegation to props.Store shared by Graph and DiGraph.

package metagraph

import (
	"fmt"

	"github.com/katalvlaran/labelgraph/core"
	"github.com/katalvlaran/labelgraph/props"
)

// topology is the read-only structural view the host validates against.
type topology interface {
	HasVertex(v int) bool
	HasEdge(u, v int) bool
	Directed() bool
}

// host owns the property store of one engine instance.
type host struct {
	topo  topology
	store *props.Store
}

// resolve validates s and returns its canonical form.
func (h *host) resolve(s props.Subject) (props.Subject, error) {
	switch s.Kind {
	case props.SubjectGraph:
		return props.GraphSubject(), nil
	case props.SubjectVertex:
		if !h.topo.HasVertex(s.U) {
			return s, fmt.Errorf("%s: %w", s, core.ErrVertexNotFound)
		}
		return s, nil
	case props.SubjectEdge:
		if !h.topo.HasEdge(s.U, s.V) {
			return s, fmt.Errorf("%s: %w", s, core.ErrEdgeNotFound)
		}
		return normalize(s, h.topo.Directed()), nil
	default:
		return s, fmt.Errorf("subject kind %d: %w", s.Kind, core.ErrVertexNotFound)
	}
}

// normalize orders undirected edge endpoints (min, max).
func normalize(s props.Subject, directed bool) props.Subject {
	if s.Kind == props.SubjectEdge && !directed && s.V < s.U {
		s.U, s.V = s.V, s.U
	}

	return s
}

// GetProperty returns the value stored under key for s.
//
// Errors:
//   - core.ErrVertexNotFound / core.ErrEdgeNotFound for unknown subjects.
//   - props.ErrPropertyNotFound when the key is unset.
func (h *host) GetProperty(s props.Subject, key string) (props.Value, error) {
	rs, err := h.resolve(s)
	if err != nil {
		return props.Value{}, fmt.Errorf("GetProperty: %w", err)
	}

	return h.store.Get(rs, key)
}

// SetProperty stores v under key for s.
func (h *host) SetProperty(s props.Subject, key string, v props.Value) error {
	rs, err := h.resolve(s)
	if err != nil {
		return fmt.Errorf("SetProperty: %w", err)
	}

	return h.store.Set(rs, key, v)
}

// GetProperties returns a copy of every property of s.
func (h *host) GetProperties(s props.Subject) (props.Properties, error) {
	rs, err := h.resolve(s)
	if err != nil {
		return nil, fmt.Errorf("GetProperties: %w", err)
	}

	return h.store.GetAll(rs), nil
}

// SetProperties merges p into the properties of s (overwrite-and-union).
func (h *host) SetProperties(s props.Subject, p props.Properties) error {
	rs, err := h.resolve(s)
	if err != nil {
		return fmt.Errorf("SetProperties: %w", err)
	}

	return h.store.SetAll(rs, p)
}

// HasProperty reports whether key is set for s; unknown subjects report false.
func (h *host) HasProperty(s props.Subject, key string) bool {
	rs, err := h.resolve(s)
	if err != nil {
		return false
	}

	return h.store.Has(rs, key)
}

// DeleteProperty unsets key for s.
func (h *host) DeleteProperty(s props.Subject, key string) error {
	rs, err := h.resolve(s)
	if err != nil {
		return fmt.Errorf("DeleteProperty: %w", err)
	}
	h.store.Delete(rs, key)

	return nil
}

// inducedStore copies the properties of the kept subjects into a fresh store,
// translating indices through vs (new index i ↔ old index vs[i]).
// Complexity: O(len(vs) + S) for S populated subjects.
func (h *host) inducedStore(vs []int) (*props.Store, error) {
	remap := make(map[int]int, len(vs))
	for i, v := range vs {
		remap[v] = i
	}

	out := props.NewStore()
	directed := h.topo.Directed()
	var (
		dst      props.Subject
		nu, nv   int
		okU, okV bool
	)
	for _, s := range h.store.Subjects() {
		// map each subject into the new index space; drop it if an endpoint is gone
		switch s.Kind {
		case props.SubjectGraph:
			dst = s
		case props.SubjectVertex:
			if nu, okU = remap[s.U]; !okU {
				continue
			}
			dst = props.VertexSubject(nu)
		case props.SubjectEdge:
			nu, okU = remap[s.U]
			nv, okV = remap[s.V]
			if !okU || !okV {
				continue
			}
			dst = normalize(props.EdgeSubject(nu, nv), directed)
		default:
			continue
		}
		if err := out.SetAll(dst, h.store.GetAll(s)); err != nil {
			return nil, fmt.Errorf("inducedStore(%s): %w", s, err)
		}
	}

	return out, nil
}
