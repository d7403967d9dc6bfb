package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labelgraph/codec"
	"github.com/katalvlaran/labelgraph/labelled"
)

// view is the read surface the commands need; both built graph types satisfy it.
type view interface {
	fmt.Stringer
	Vertices() []string
	Edges() []labelled.Edge[string]
	OutNeighbors(label string) ([]string, error)
	InNeighbors(label string) ([]string, error)
	AllNeighbors(label string) ([]string, error)
}

// loaded is a graph read from disk plus a direction-agnostic subgraph export.
type loaded struct {
	view
	subgraph func(labels []string) (*codec.Document, error)
}

func wrap[B labelled.Backend[B]](g *labelled.Graph[string, B]) *loaded {
	return &loaded{
		view: g,
		subgraph: func(labels []string) (*codec.Document, error) {
			sub, _, err := g.InducedSubgraph(labels)
			if err != nil {
				return nil, err
			}
			return codec.FromGraph(sub)
		},
	}
}

// load reads path and builds the graph its directed flag asks for.
func load(path string, log logrus.FieldLogger) (*loaded, error) {
	doc, err := codec.ReadFile(path)
	if err != nil {
		return nil, err
	}
	log = log.WithField("file", path)
	log.WithFields(logrus.Fields{
		"directed": doc.Directed,
		"vertices": len(doc.Vertices),
		"edges":    len(doc.Edges),
	}).Info("document decoded")

	if doc.Directed {
		g, err := codec.BuildDirected(doc, labelled.WithLogger(log))
		if err != nil {
			return nil, err
		}
		return wrap(g), nil
	}
	g, err := codec.BuildUndirected(doc, labelled.WithLogger(log))
	if err != nil {
		return nil, err
	}

	return wrap(g), nil
}
