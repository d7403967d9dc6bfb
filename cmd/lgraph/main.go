// Package main provides the lgraph CLI: inspection of labelled graphs stored
// as YAML documents.
package main

import (
	"os"
)

var version = "0.1.0" // set via ldflags: -X main.version=...

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
