// SPDX-License-Identifier: MIT

// Package codec reads and writes labelled graphs as YAML documents.
//
// Document layout:
//
//	directed: false
//	properties:          # graph-level, optional
//	  name: backbone
//	vertices:
//	  - label: kyiv
//	    properties:
//	      population: 2952301
//	  - label: lviv
//	edges:
//	  - from: kyiv
//	    to: lviv
//	    properties:
//	      km: 540.5
//
// Vertex order in the document is the vertex order of the built graph.
// Property values must be scalars (string, integer, float, bool); anything
// else is rejected with props.ErrUnsupportedValue.
//
// Built graphs use the property-capable engines from package metagraph, so
// everything a document carries survives a Decode → Build → FromGraph → Encode
// round trip.
package codec
