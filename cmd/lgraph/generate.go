package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/labelgraph/builder"
	"github.com/katalvlaran/labelgraph/codec"
	"github.com/katalvlaran/labelgraph/core"
	"github.com/katalvlaran/labelgraph/labelled"
)

var topologies = map[string]func(n int) builder.Constructor{
	"path":     builder.Path,
	"cycle":    builder.Cycle,
	"complete": builder.Complete,
	"star":     builder.Star,
}

func topologyNames() string {
	names := make([]string, 0, len(topologies))
	for name := range topologies {
		names = append(names, name)
	}
	sort.Strings(names)

	return strings.Join(names, "|")
}

func (a *app) newGenerateCmd() *cobra.Command {
	var (
		directed bool
		prefix   string
		excel    bool
		output   string
	)
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("generate {%s} N", topologyNames()),
		Short: "Write a generated topology with N vertices as YAML",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mk, ok := topologies[args[0]]
			if !ok {
				return fmt.Errorf("unknown topology %q (want %s)", args[0], topologyNames())
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("vertex count %q: %w", args[1], err)
			}

			var fn builder.LabelFn = builder.DefaultLabelFn
			switch {
			case prefix != "":
				fn = builder.PrefixedLabelFn(prefix)
			case excel:
				fn = builder.ExcelColumnLabelFn
			}
			labels := builder.Labels(n, fn)

			var doc *codec.Document
			if directed {
				doc, err = generate(core.NewDiGraph, mk(n), labels, a.log)
			} else {
				doc, err = generate(core.NewGraph, mk(n), labels, a.log)
			}
			if err != nil {
				return err
			}
			if output == "" {
				return codec.Encode(cmd.OutOrStdout(), doc)
			}

			return codec.WriteFile(output, doc)
		},
	}
	cmd.Flags().BoolVar(&directed, "directed", false, "build a directed graph")
	cmd.Flags().BoolVar(&excel, "excel", false, "label vertices A, B, ..., Z, AA, ...")
	cmd.Flags().StringVar(&prefix, "prefix", "", "label vertices PREFIX0, PREFIX1, ... (overrides --excel)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")

	return cmd
}

// generate grows an empty engine with cons and labels the result.
func generate[B labelled.Backend[B]](factory func(n int) (B, error), cons builder.Constructor, labels []string, log logrus.FieldLogger) (*codec.Document, error) {
	empty, err := factory(0)
	if err != nil {
		return nil, err
	}
	g, err := builder.Build(empty, cons)
	if err != nil {
		return nil, err
	}
	lg, err := labelled.New(labels, g, labelled.WithLogger(log))
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"vertices": lg.VertexCount(), "edges": lg.EdgeCount()}).Info("topology generated")

	return codec.FromGraph(lg)
}
