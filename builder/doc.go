// Package builder provides deterministic topology constructors for the
// dense-index engines in package core (and anything else that can grow by one
// vertex and insert an edge by index).
//
// The package offers the following key components:
//
//   - Constructor: a closure that appends a fixed topology to a Growable.
//   - Build:       applies constructors in order and wraps the first failure.
//   - Topologies:  Path, Cycle, Complete, Star.
//   - Label schemes (LabelFn implementations) for naming vertices in labelled graphs:
//     - DefaultLabelFn:       decimal strings ("0","1",…).
//     - ExcelColumnLabelFn:   Excel-style columns ("A","Z","AA",…).
//     - PrefixedLabelFn(p):   prefix + decimal ("v0","v1",…).
//
// Guarantees:
//
//   - Every constructor appends fresh vertices; existing vertices are never touched,
//     so constructors compose into disjoint unions.
//   - Edge emission order is stable for a fixed n.
//   - Runtime errors are sentinel-based (ErrTooFewVertices) and wrapped with %w.
package builder
