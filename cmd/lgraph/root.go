package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand.
type app struct {
	log      *logrus.Logger
	logLevel string
	format   logFormat
}

func newRootCmd() *cobra.Command {
	a := &app{log: logrus.New(), format: formatText}

	rootCmd := &cobra.Command{
		Use:   "lgraph",
		Short: "Inspect labelled graphs stored as YAML",
		Long: `lgraph loads a labelled graph document (see package codec for the layout)
and answers questions about it: size, edges, neighbours of a vertex, and
induced subgraphs.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.configureLogger,
	}
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().Var(&a.format, "log-format", "log format: text, json")

	rootCmd.AddCommand(
		a.newInfoCmd(),
		a.newEdgesCmd(),
		a.newNeighborsCmd(),
		a.newSubgraphCmd(),
		a.newGenerateCmd(),
	)

	return rootCmd
}

func (a *app) configureLogger(cmd *cobra.Command, _ []string) error {
	lvl, err := logrus.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetLevel(lvl)
	a.log.SetFormatter(a.format.formatter())

	return nil
}
