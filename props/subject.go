// SPDX-License-Identifier: MIT

package props

import "fmt"

// SubjectKind tells which entity a property belongs to.
type SubjectKind uint8

// Subject kinds.
const (
	SubjectGraph SubjectKind = iota
	SubjectVertex
	SubjectEdge
)

// Subject addresses the owner of a set of properties. It is comparable and
// used directly as a map key.
//
// Edge subjects are stored as given; callers owning undirected graphs
// normalize (u, v) before use.
type Subject struct {
	Kind SubjectKind
	U    int // vertex index, or edge source
	V    int // edge destination
}

// GraphSubject addresses graph-level properties.
func GraphSubject() Subject { return Subject{Kind: SubjectGraph} }

// VertexSubject addresses properties of vertex v.
func VertexSubject(v int) Subject { return Subject{Kind: SubjectVertex, U: v} }

// EdgeSubject addresses properties of edge u→v.
func EdgeSubject(u, v int) Subject { return Subject{Kind: SubjectEdge, U: u, V: v} }

// String renders the subject for error messages.
func (s Subject) String() string {
	switch s.Kind {
	case SubjectVertex:
		return fmt.Sprintf("vertex %d", s.U)
	case SubjectEdge:
		return fmt.Sprintf("edge %d->%d", s.U, s.V)
	default:
		return "graph"
	}
}
