// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/labelgraph/labelled"
	"github.com/katalvlaran/labelgraph/props"
)

// Sentinel errors for document handling.
var (
	// ErrDirectionMismatch indicates a Build function was handed a document
	// whose directed flag does not match the requested engine.
	ErrDirectionMismatch = errors.New("codec: document direction mismatch")

	// ErrEmptyLabel indicates a vertex or edge endpoint with an empty label.
	ErrEmptyLabel = errors.New("codec: empty label")
)

// Document is the YAML representation of a labelled graph.
type Document struct {
	Directed   bool       `yaml:"directed"`
	Properties Properties `yaml:"properties,omitempty"`
	Vertices   []Vertex   `yaml:"vertices"`
	Edges      []Edge     `yaml:"edges,omitempty"`
}

// Properties is a decoded property mapping: scalar values keyed by name.
type Properties map[string]any

// MarshalYAML writes float values as explicit floats so that integral values
// such as 2.0 decode as floats again instead of integers.
func (p Properties) MarshalYAML() (any, error) {
	out := make(map[string]any, len(p))
	for k, v := range p {
		switch f := v.(type) {
		case float64:
			out[k] = floatNode(f)
		case float32:
			out[k] = floatNode(float64(f))
		default:
			out[k] = v
		}
	}

	return out, nil
}

// floatNode renders f as a !!float scalar that always reads back as a float.
func floatNode(f float64) *yaml.Node {
	var s string
	switch {
	case math.IsNaN(f):
		s = ".nan"
	case math.IsInf(f, 1):
		s = ".inf"
	case math.IsInf(f, -1):
		s = "-.inf"
	default:
		s = strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
	}

	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: s}
}

// Vertex is one entry of Document.Vertices.
type Vertex struct {
	Label      string     `yaml:"label"`
	Properties Properties `yaml:"properties,omitempty"`
}

// Edge is one entry of Document.Edges.
type Edge struct {
	From       string     `yaml:"from"`
	To         string     `yaml:"to"`
	Properties Properties `yaml:"properties,omitempty"`
}

// Labels returns the vertex labels in document order.
func (d *Document) Labels() []string {
	out := make([]string, len(d.Vertices))
	for i, v := range d.Vertices {
		out[i] = v.Label
	}

	return out
}

// Validate checks that the document describes a buildable graph.
//
// Errors:
//   - ErrEmptyLabel for an empty vertex label or edge endpoint.
//   - labelled.ErrDuplicateLabel when a vertex label repeats.
//   - labelled.ErrUnknownLabel when an edge names an undeclared vertex.
//   - props.ErrUnsupportedValue for a non-scalar property value.
func (d *Document) Validate() error {
	seen := make(map[string]struct{}, len(d.Vertices))
	if _, err := toProperties(d.Properties); err != nil {
		return fmt.Errorf("graph properties: %w", err)
	}
	for i, v := range d.Vertices {
		if v.Label == "" {
			return fmt.Errorf("vertex #%d: %w", i, ErrEmptyLabel)
		}
		if _, dup := seen[v.Label]; dup {
			return fmt.Errorf("vertex %q: %w", v.Label, labelled.ErrDuplicateLabel)
		}
		seen[v.Label] = struct{}{}
		if _, err := toProperties(v.Properties); err != nil {
			return fmt.Errorf("vertex %q: %w", v.Label, err)
		}
	}
	for i, e := range d.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("edge #%d: %w", i, ErrEmptyLabel)
		}
		for _, end := range []string{e.From, e.To} {
			if _, ok := seen[end]; !ok {
				return fmt.Errorf("edge %s -> %s: %q: %w", e.From, e.To, end, labelled.ErrUnknownLabel)
			}
		}
		if _, err := toProperties(e.Properties); err != nil {
			return fmt.Errorf("edge %s -> %s: %w", e.From, e.To, err)
		}
	}

	return nil
}

// toProperties converts a decoded YAML mapping into props.Properties.
// A nil or empty mapping yields nil.
func toProperties(m map[string]any) (props.Properties, error) {
	if len(m) == 0 {
		return nil, nil
	}
	out := make(props.Properties, len(m))
	for k, raw := range m {
		v, err := props.FromAny(raw)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", k, err)
		}
		out[k] = v
	}

	return out, nil
}

// fromProperties is the inverse of toProperties.
func fromProperties(p props.Properties) Properties {
	if len(p) == 0 {
		return nil
	}
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v.Interface()
	}

	return out
}
