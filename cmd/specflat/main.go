// Package main provides the CLI entrypoint for specflat.
//
// specflat reads a cross-referencing document (YAML or JSON), resolves
// every reference it can reach, and writes a single self-contained
// document with the resolved objects relocated into typed buckets.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
