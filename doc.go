// Package labelgraph is a label-addressed graph toolkit: vertices are named by
// caller-chosen values (strings, integers, any comparable type) while a
// dense-index engine does the storage underneath.
//
// 🚀 What is inside?
//
//	core/      - dense-index engines: undirected Graph, directed DiGraph (RWMutex-guarded)
//	props/     - scalar property values and a subject-keyed Store
//	metagraph/ - core engines with an attached property store
//	labelled/  - the label ↔ index translation layer over any engine
//	builder/   - Path, Cycle, Complete, Star topologies and label generators
//	codec/     - YAML documents ↔ labelled graphs
//	cmd/lgraph - CLI to inspect YAML graph documents
//
// ✨ How the layers meet
//
//	labels   "kyiv"  "lviv"  "odesa"      labelled.Registry
//	index       0       1       2
//	edges     (0,1)   (0,2)               core.Graph
//	props     vertex 0: population=…      props.Store (via metagraph)
//
// Quick start:
//
//	g, _ := labelled.NewUndirected([]string{"A", "B", "C", "D"})
//	g.AddEdge("A", "B")
//	g.AddEdge("B", "D")
//	nb, _ := g.OutNeighbors("B") // [A D]
//
// Vertices and edges are never removed; growth is append-only, so every
// index handed out by an engine stays valid for the engine's lifetime.
//
//	go get github.com/katalvlaran/labelgraph
package labelgraph
