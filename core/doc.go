// Package core provides the dense-index backing engine used by the labelled layer.
//
// Vertices are identified by contiguous integer indices 0..n-1 assigned in
// insertion order. Two representations are provided:
//
//   - Graph   - undirected; every edge is traversable in both directions.
//   - DiGraph - directed; separate forward and backward adjacency.
//
// Adjacency is stored as per-vertex sorted index slices, so neighbour queries
// and edge enumeration are deterministic without extra sorting:
//
//	out[u] = [v1 v2 ...]  // ascending
//	in[v]  = [u1 u2 ...]  // DiGraph only, ascending
//
// Directedness is a property of the type, not of the instance: Graph.Directed()
// is always false, DiGraph.Directed() is always true.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex() (int, error)          // O(1) amortized, returns the new index
//	HasVertex(v int) bool             // O(1)
//	VertexCount() int                 // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v int) (bool, error)   // O(deg); false when already present
//	HasEdge(u, v int) bool            // O(log deg)
//	EdgeCount() int                   // O(1)
//	Edges() []Edge                    // O(V+E), sorted by (From, To)
//
//	// Neighbourhood
//	OutNeighbors(v int) ([]int, error)
//	InNeighbors(v int) ([]int, error)
//
//	// Views
//	InducedSubgraph(vs []int)         // fresh, independent instance
//	Clone()                           // deep copy
//
// Vertex and edge removal are not supported: the index space only grows.
//
// Errors:
//
//	ErrNegativeCount    - negative vertex count at construction
//	ErrVertexNotFound   - index outside [0, VertexCount())
//	ErrEdgeNotFound     - edge does not exist
//	ErrDuplicateVertex  - repeated index in an induced-subgraph request
//
// All methods are safe for concurrent use; each instance guards its adjacency
// with a single sync.RWMutex.
package core
