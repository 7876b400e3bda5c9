package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"declet/internal/diagfmt"
	"declet/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.decl ...]",
	Short: "Run the full analysis over declaration source files",
	Long: `Check runs lexical, syntax and semantic analysis in order. Each later
phase runs only when the previous one finished without errors. Without
arguments, sources are discovered through declet.toml.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().String("ui", "auto", "interactive progress display (auto|on|off)")
	checkCmd.Flags().Bool("cache", false, "reuse cached results for unchanged files")
	checkCmd.Flags().Int("jobs", 4, "number of files analyzed concurrently")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	useCache, _ := cmd.Flags().GetBool("cache")
	jobs, _ := cmd.Flags().GetInt("jobs")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")

	paths, err := resolveCheckTargets(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no source files to check")
	}

	opts := driver.CheckOptions{
		MaxDiagnostics: maxDiagnostics(cmd),
		Jobs:           jobs,
	}
	if useCache {
		cache, err := driver.OpenDiskCache("declet")
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		opts.Cache = cache
	}

	ctx := context.Background()

	var results []*driver.CheckResult
	if format == "pretty" && shouldUseTUI(mode) && len(paths) > 0 {
		results, err = runCheckWithUI(ctx, "checking", paths, opts)
	} else {
		results, err = driver.CheckMany(ctx, paths, opts)
	}
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if !res.Ok() {
			failed++
		}
		switch format {
		case "pretty":
			reportPretty(cmd, res, quiet, timings)
		case "json":
			if err := diagfmt.JSON(os.Stdout, res.Bag, res.FileSet, diagfmt.JSONOpts{
				IncludePositions: true,
			}); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(results))
	}
	return nil
}

func reportPretty(cmd *cobra.Command, res *driver.CheckResult, quiet, timings bool) {
	if res.Bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{
			Color:      useColor(cmd, os.Stderr),
			ShowSource: true,
		})
	}
	if !quiet {
		status := res.State.String()
		if res.FromCache {
			status += " (cached)"
		}
		fmt.Fprintf(os.Stdout, "%s: %s, %s\n", res.Path, status, diagfmt.Summary(res.Bag))
	}
	if timings && len(res.Report.Phases) > 0 {
		for _, p := range res.Report.Phases {
			fmt.Fprintf(os.Stdout, "  %-8s %7.2f ms\n", p.Name, p.DurationMS)
		}
	}
}
