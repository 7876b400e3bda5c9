package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"declet/internal/diagfmt"
	"declet/internal/driver"
	"declet/internal/pipeline"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.decl",
	Short: "Parse a declaration source file",
	Long:  `Parse tokenizes a declaration source file and, when the lexical phase is clean, builds its declarations`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Parse(filePath, maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		opts := diagfmt.PrettyOpts{
			Color:      useColor(cmd, os.Stderr),
			ShowSource: true,
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}

	if result.State != pipeline.StateParsedOk {
		return fmt.Errorf("parse stopped at %s: %s", result.State, diagfmt.Summary(result.Bag))
	}

	switch format {
	case "pretty":
		return diagfmt.FormatDeclsPretty(os.Stdout, result.Decls)
	case "json":
		return diagfmt.FormatDeclsJSON(os.Stdout, result.Decls)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
