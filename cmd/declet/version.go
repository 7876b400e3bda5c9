package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"declet/internal/version"
)

const versionTagline = "declare once, check thrice"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show declet build information",
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	versionCmd.Flags().Bool("full", false, "include commit, message and build date")
}

func runVersion(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	full, _ := cmd.Flags().GetBool("full")
	out := cmd.OutOrStdout()

	ver := strings.TrimSpace(version.Version)
	if ver == "" {
		ver = "dev"
	}

	switch strings.ToLower(format) {
	case "json":
		payload := map[string]string{
			"tool":    "declet",
			"version": ver,
			"tagline": versionTagline,
		}
		if full {
			payload["git_commit"] = orUnknown(version.GitCommit)
			payload["git_message"] = orUnknown(version.GitMessage)
			payload["build_date"] = orUnknown(version.BuildDate)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case "pretty":
		fmt.Fprintf(out, "declet %s (%s)\n", ver, versionTagline)
		if full {
			fmt.Fprintf(out, "commit:  %s\n", orUnknown(version.GitCommit))
			fmt.Fprintf(out, "message: %s\n", orUnknown(version.GitMessage))
			fmt.Fprintf(out, "built:   %s\n", orUnknown(version.BuildDate))
		}
		return nil
	}
	return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
}

func orUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "unknown"
	}
	return s
}
