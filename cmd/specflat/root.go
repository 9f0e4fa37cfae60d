package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"specflat"
	"specflat/node"
)

var (
	specURLFlag string
	outputFlag  string
	formatFlag  string
	debugFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "specflat [file]",
	Short: "Flatten a cross-referencing document into a self-contained one",
	Long: `specflat resolves every $ref reachable from the input document,
relocates the resolved objects into the definitions, parameters and
responses buckets under collision-resistant keys, and rewrites each
reference to point at its bucket entry. Reads stdin when no file is
given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,

	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&specURLFlag, "spec-url", "",
		"Canonical URL of the root document; file paths in keys are relativized against it")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "-",
		"Output file, '-' for stdout")
	rootCmd.Flags().StringVar(&formatFlag, "format", "yaml",
		"Output format: yaml or json")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false,
		"Dump full warning details to stderr")
}

func run(cmd *cobra.Command, args []string) error {
	raw, source, err := readInput(args)
	if err != nil {
		return err
	}

	doc, err := node.Parse(raw)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", source, err)
	}

	specURL := specURLFlag
	if specURL == "" && len(args) == 1 {
		specURL = "file://" + args[0]
	}

	var opts []specflat.Option
	if specURL != "" {
		opts = append(opts, specflat.WithSpecURL(specURL))
	}

	result, err := specflat.Flatten(doc, opts...)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), w.String())
	}

	if debugFlag && len(result.Warnings) > 0 {
		spew.Fdump(cmd.ErrOrStderr(), result.Warnings)
	}

	out, err := encode(result.Document, formatFlag)
	if err != nil {
		return err
	}

	return writeOutput(out)
}

func readInput(args []string) ([]byte, string, error) {
	if len(args) == 0 {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read stdin: %w", err)
		}

		return raw, "stdin", nil
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", err
	}

	return raw, args[0], nil
}

func encode(doc node.Node, format string) ([]byte, error) {
	switch format {
	case "yaml":
		return yaml.Marshal(doc)
	case "json":
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}

		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want yaml or json)", format)
	}
}

func writeOutput(out []byte) error {
	if outputFlag == "-" {
		_, err := os.Stdout.Write(out)
		return err
	}

	return os.WriteFile(outputFlag, out, 0o644)
}
