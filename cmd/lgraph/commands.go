package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labelgraph/codec"
)

func (a *app) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Print vertex and edge counts and the vertex labels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load(args[0], a.log)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, g)
			fmt.Fprintf(out, "vertices: %s\n", strings.Join(g.Vertices(), " "))

			return nil
		},
	}
}

func (a *app) newEdgesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edges FILE",
		Short: "Print every edge, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load(args[0], a.log)
			if err != nil {
				return err
			}
			for _, e := range g.Edges() {
				fmt.Fprintln(cmd.OutOrStdout(), e)
			}

			return nil
		},
	}
}

func (a *app) newNeighborsCmd() *cobra.Command {
	dir := dirOut
	cmd := &cobra.Command{
		Use:   "neighbors FILE LABEL",
		Short: "Print the neighbours of a vertex, one per line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load(args[0], a.log)
			if err != nil {
				return err
			}
			var nb []string
			switch dir {
			case dirIn:
				nb, err = g.InNeighbors(args[1])
			case dirAll:
				nb, err = g.AllNeighbors(args[1])
			default:
				nb, err = g.OutNeighbors(args[1])
			}
			if err != nil {
				return err
			}
			for _, l := range nb {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}

			return nil
		},
	}
	cmd.Flags().VarP(&dir, "direction", "d", "neighbour set: out, in, all")

	return cmd
}

func (a *app) newSubgraphCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "subgraph FILE LABEL...",
		Short: "Write the subgraph induced by the given labels as YAML",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load(args[0], a.log)
			if err != nil {
				return err
			}
			doc, err := g.subgraph(args[1:])
			if err != nil {
				return err
			}
			if output == "" {
				return codec.Encode(cmd.OutOrStdout(), doc)
			}
			a.log.WithField("output", output).Info("writing subgraph")

			return codec.WriteFile(output, doc)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")

	return cmd
}
