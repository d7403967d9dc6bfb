// Package metagraph adds a property store to the dense-index engines of
// package core.
//
// Graph and DiGraph embed *core.Graph and *core.DiGraph respectively, so every
// structural method (AddVertex, AddEdge, Edges, OutNeighbors, ...) is the core
// one. On top of that they expose:
//
//	GetProperty(s, key)    (props.Value, error)
//	SetProperty(s, key, v) error
//	GetProperties(s)       (props.Properties, error)
//	SetProperties(s, p)    error   // overwrite-and-union merge
//	HasProperty(s, key)    bool
//	DeleteProperty(s, key) error
//
// Subjects are validated against the topology before the store is touched:
// vertex subjects must name an existing vertex (core.ErrVertexNotFound) and
// edge subjects an existing edge (core.ErrEdgeNotFound). For undirected graphs
// edge subjects are normalized so (u, v) and (v, u) address the same bucket.
package metagraph
