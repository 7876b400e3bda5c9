package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"declet/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "declet",
	Short: "Declet declaration analyzer",
	Long:  `Declet analyzes declaration source files in three phases: lexical, syntax and semantic`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}

func maxDiagnostics(cmd *cobra.Command) int {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil || n <= 0 {
		return 100
	}
	return n
}
