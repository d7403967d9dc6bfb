// SPDX-License-Identifier: MIT
// File: properties.go
// Role: Property delegation shim. Translates label subjects into index subjects
//       and forwards to the backing engine's PropertyBackend.
// AI-HINT (file):
//   - Only label translation happens here; missing keys, value kinds and the
//     SetProperties merge rule are the backend's contract.

package labelled

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labelgraph/props"
)

// Subject addresses the owner of a property in label space: the graph, a
// vertex, or an edge.
type Subject[T comparable] struct {
	kind   props.SubjectKind
	vertex T
	edge   Edge[T]
}

// OnGraph addresses graph-level properties.
func OnGraph[T comparable]() Subject[T] { return Subject[T]{kind: props.SubjectGraph} }

// OnVertex addresses the properties of the vertex named label.
func OnVertex[T comparable](label T) Subject[T] {
	return Subject[T]{kind: props.SubjectVertex, vertex: label}
}

// OnEdge addresses the properties of edge e.
func OnEdge[T comparable](e Edge[T]) Subject[T] { return Subject[T]{kind: props.SubjectEdge, edge: e} }

// OnEdgeBetween addresses the properties of edge src → dst.
func OnEdgeBetween[T comparable](src, dst T) Subject[T] { return OnEdge(NewEdge(src, dst)) }

// String renders the subject for logs and errors.
func (s Subject[T]) String() string {
	switch s.kind {
	case props.SubjectVertex:
		return fmt.Sprintf("vertex %v", s.vertex)
	case props.SubjectEdge:
		return "edge " + s.edge.String()
	default:
		return "graph"
	}
}

// subject translates s into index space.
func (g *Graph[T, B]) subject(s Subject[T]) (props.Subject, error) {
	switch s.kind {
	case props.SubjectVertex:
		v, err := g.reg.IndexOf(s.vertex)
		if err != nil {
			return props.Subject{}, err
		}
		return props.VertexSubject(v), nil
	case props.SubjectEdge:
		u, err := g.reg.IndexOf(s.edge.Src)
		if err != nil {
			return props.Subject{}, err
		}
		v, err := g.reg.IndexOf(s.edge.Dst)
		if err != nil {
			return props.Subject{}, err
		}
		return props.EdgeSubject(u, v), nil
	default:
		return props.GraphSubject(), nil
	}
}

// properties resolves the backend's property store and translates s.
func (g *Graph[T, B]) properties(op string, s Subject[T]) (PropertyBackend, props.Subject, error) {
	pb, ok := any(g.backing).(PropertyBackend)
	if !ok {
		return nil, props.Subject{}, fmt.Errorf("%s: %T: %w", op, g.backing, ErrPropertiesUnsupported)
	}
	ps, err := g.subject(s)
	if err != nil {
		return nil, props.Subject{}, fmt.Errorf("%s(%s): %w", op, s, err)
	}

	return pb, ps, nil
}

// SupportsProperties reports whether the backing engine has a property store.
func (g *Graph[T, B]) SupportsProperties() bool {
	_, ok := any(g.backing).(PropertyBackend)
	return ok
}

// GetProperty returns the value stored under key for s.
//
// Errors:
//   - ErrPropertiesUnsupported, ErrUnknownLabel from this layer.
//   - Anything the backend reports (e.g. props.ErrPropertyNotFound), unchanged.
func (g *Graph[T, B]) GetProperty(s Subject[T], key string) (props.Value, error) {
	pb, ps, err := g.properties("GetProperty", s)
	if err != nil {
		return props.Value{}, err
	}

	return pb.GetProperty(ps, key)
}

// SetProperty stores v under key for s.
func (g *Graph[T, B]) SetProperty(s Subject[T], key string, v props.Value) error {
	pb, ps, err := g.properties("SetProperty", s)
	if err != nil {
		return err
	}
	if err = pb.SetProperty(ps, key, v); err != nil {
		return err
	}
	g.log.WithFields(logrus.Fields{"subject": s.String(), "key": key}).Debug("labelled: property set")

	return nil
}

// GetProperties returns every property of s.
func (g *Graph[T, B]) GetProperties(s Subject[T]) (props.Properties, error) {
	pb, ps, err := g.properties("GetProperties", s)
	if err != nil {
		return nil, err
	}

	return pb.GetProperties(ps)
}

// SetProperties merges p into the properties of s using the backend's merge
// rule (overwrite-and-union for package metagraph).
func (g *Graph[T, B]) SetProperties(s Subject[T], p props.Properties) error {
	pb, ps, err := g.properties("SetProperties", s)
	if err != nil {
		return err
	}
	if err = pb.SetProperties(ps, p); err != nil {
		return err
	}
	g.log.WithFields(logrus.Fields{"subject": s.String(), "keys": len(p)}).Debug("labelled: properties merged")

	return nil
}

// HasProperty reports whether key is set for s.
//
// Errors:
//   - ErrPropertiesUnsupported, ErrUnknownLabel.
func (g *Graph[T, B]) HasProperty(s Subject[T], key string) (bool, error) {
	pb, ps, err := g.properties("HasProperty", s)
	if err != nil {
		return false, err
	}

	return pb.HasProperty(ps, key), nil
}
