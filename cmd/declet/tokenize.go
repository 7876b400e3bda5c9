package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"declet/internal/diagfmt"
	"declet/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.decl",
	Short: "Tokenize a declaration source file",
	Long:  `Tokenize breaks down a declaration source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Tokenize(filePath, maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if result.Bag.HasErrors() || result.Bag.HasWarnings() {
		opts := diagfmt.PrettyOpts{
			Color:      useColor(cmd, os.Stderr),
			ShowSource: true,
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
