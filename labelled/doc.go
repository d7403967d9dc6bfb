// Package labelled wraps a dense-index graph engine so that vertices are
// addressed by caller-chosen labels (strings, integers, any comparable type)
// instead of contiguous indices.
//
// A Graph[T, B] owns two things that always change together:
//
//   - a Registry[T]: the ordered label sequence (position == dense index) and
//     the reverse map label → index;
//   - a backing engine B: the structure that actually stores edges, e.g.
//     *core.Graph, *core.DiGraph, *metagraph.Graph, *metagraph.DiGraph.
//
// Every operation translates label arguments into indices, delegates to B,
// and translates index results back into labels:
//
//	labels  ["a", "b", "c"]          registry
//	index     0    1    2
//	edges   (0,1) (1,2)              backing engine
//	Edges() → [a -> b, b -> c]       labelled view
//
// Vertices() returns labels in construction order followed by insertion order.
// That ordering is part of the contract.
//
// Errors:
//
//	ErrArityMismatch         - label count != backing vertex count at construction
//	ErrDuplicateLabel        - label already registered, or repeated in a batch
//	ErrUnknownLabel          - label not registered where absence is an error
//	ErrPropertiesUnsupported - property operation on a backend without a store
//	ErrIndexMismatch         - backend vertex count out of step with the labels
//
// HasVertex and HasEdge never fail: unknown labels simply yield false.
//
// Concurrency: a Graph performs no internal locking. The registry and the
// backing engine form one unit; callers sharing a Graph across goroutines must
// serialize every mutating call (AddVertex, AddVertices, AddEdge, property
// setters) against each other and against concurrent reads.
package labelled
