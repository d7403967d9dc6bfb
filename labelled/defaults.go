// SPDX-License-Identifier: MIT
// File: defaults.go
// Role: Named default instantiations over the engines shipped with this module.

package labelled

import (
	"github.com/katalvlaran/labelgraph/core"
	"github.com/katalvlaran/labelgraph/metagraph"
)

// NewUndirected labels a fresh edgeless *core.Graph with len(labels) vertices.
func NewUndirected[T comparable](labels []T, opts ...Option) (*Graph[T, *core.Graph], error) {
	return NewEmpty(labels, core.NewGraph, opts...)
}

// NewDirected labels a fresh edgeless *core.DiGraph with len(labels) vertices.
func NewDirected[T comparable](labels []T, opts ...Option) (*Graph[T, *core.DiGraph], error) {
	return NewEmpty(labels, core.NewDiGraph, opts...)
}

// NewMetaUndirected labels a fresh edgeless *metagraph.Graph; the result
// supports the property methods.
func NewMetaUndirected[T comparable](labels []T, opts ...Option) (*Graph[T, *metagraph.Graph], error) {
	return NewEmpty(labels, metagraph.NewGraph, opts...)
}

// NewMetaDirected labels a fresh edgeless *metagraph.DiGraph; the result
// supports the property methods.
func NewMetaDirected[T comparable](labels []T, opts ...Option) (*Graph[T, *metagraph.DiGraph], error) {
	return NewEmpty(labels, metagraph.NewDiGraph, opts...)
}
