package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lcc/internal/diag"
	"lcc/internal/diagfmt"
	"lcc/internal/driver"
	"lcc/internal/observ"
	"lcc/internal/project"
	"lcc/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] [files or directories]",
	Short: "Parse source files and print their declarations",
	Long:  `Parse runs the grammar over .lc files and prints the accepted declarations. Without arguments it parses the [build] sources of the nearest lcc.toml`,
	Args:  cobra.ArbitraryArgs,
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for batch parsing (0=auto)")
	parseCmd.Flags().Int("std", 0, "language standard (1|2, 0=manifest or default)")
	parseCmd.Flags().String("ui", "auto", "progress UI for multi-file runs (auto|on|off)")
	parseCmd.Flags().Bool("cache", false, "reuse parse outcomes from the disk cache")
	parseCmd.Flags().String("trace", "", "write grammar trace events to a file ('-' for stderr)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	stdFlag, err := cmd.Flags().GetInt("std")
	if err != nil {
		return fmt.Errorf("failed to get std flag: %w", err)
	}
	if stdFlag != 0 && stdFlag != 1 && stdFlag != 2 {
		return fmt.Errorf("invalid --std value %d (expected 1 or 2)", stdFlag)
	}

	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}

	traceValue, err := cmd.Flags().GetString("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if maxDiagnostics <= 0 {
		maxDiagnostics = 256
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	paths, std, err := resolveInputs(args, stdFlag)
	if err != nil {
		return err
	}

	tracer, traceCleanup, err := setupTracing(traceValue)
	if err != nil {
		return err
	}
	defer traceCleanup()

	opts := driver.Options{
		MaxDiagnostics: maxDiagnostics,
		Std:            std,
		Jobs:           jobs,
		Tracer:         tracer,
	}

	if useCache {
		cache, err := driver.OpenDiskCache("lcc")
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
		opts.Cache = cache
	}

	var timer *observ.Timer
	if showTimings {
		timer = observ.NewTimer()
		opts.Timer = timer
	}

	var (
		fileSet *source.FileSet
		results []driver.ParseResult
	)
	if len(paths) > 1 && format == "pretty" && shouldUseTUI(mode) {
		fileSet, results, err = runParseFilesWithUI(cmd.Context(), "parsing", paths, opts)
	} else {
		fileSet, results, err = driver.ParseFiles(cmd.Context(), paths, opts)
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	agg := diag.NewBag(maxDiagnostics)
	for i := range results {
		agg.Merge(results[i].Bag)
	}
	agg.Sort()
	agg.Dedup()

	prettyOpts := diagfmt.PrettyOpts{
		Color:       useColor(cmd, os.Stderr),
		ShowNotes:   true,
		ShowPreview: true,
	}

	switch format {
	case "pretty":
		if agg.Len() > 0 {
			diagfmt.Pretty(os.Stderr, agg, fileSet, prettyOpts)
		}
		for idx := range results {
			r := &results[idx]
			if !quiet && len(results) > 1 {
				fmt.Fprintf(os.Stdout, "== %s ==\n", r.Path)
			}
			switch {
			case r.Cached && r.Ok():
				fmt.Fprintf(os.Stdout, "ok (%d declarations, cached)\n", r.DeclCount)
			case r.Ok():
				diagfmt.FormatExprsPretty(os.Stdout, r.Decls)
			}
			if !quiet && len(results) > 1 && idx < len(results)-1 {
				fmt.Fprintln(os.Stdout)
			}
		}
	case "short":
		output := diag.FormatShort(agg.Items(), true)
		if output != "" {
			fmt.Fprintln(os.Stdout, output)
		}
	case "json":
		files := make(map[string]any, len(results))
		for i := range results {
			r := &results[i]
			switch {
			case r.Cached && r.Ok():
				files[r.Path] = map[string]any{"cached": true, "declarations": r.DeclCount}
			case r.Ok():
				files[r.Path] = diagfmt.BuildExprsJSON(r.Decls)
			default:
				files[r.Path] = nil
			}
		}
		doc := struct {
			Files map[string]any `json:"files"`
			diagfmt.DiagnosticsOutput
		}{
			Files:             files,
			DiagnosticsOutput: diagfmt.BuildDiagnosticsOutput(agg, diagfmt.JSONOpts{IncludeNotes: true}),
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if timer != nil {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if agg.HasErrors() {
		// Suppress cobra usage output on diagnostic errors
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("") // Silent error - diagnostics already printed
	}
	return nil
}

// resolveInputs expands the command arguments into source paths. Without
// arguments it falls back to the [build] sources of the nearest manifest.
// The returned standard follows flag over manifest over driver default.
func resolveInputs(args []string, stdFlag int) ([]string, int, error) {
	std := stdFlag
	var sources []string

	if len(args) == 0 || std == 0 {
		manifest, ok, err := project.FindAndLoad(".")
		if err != nil {
			return nil, 0, err
		}
		if ok {
			if std == 0 {
				std = manifest.Config.Build.Std
			}
			for _, src := range manifest.Config.Build.Sources {
				sources = append(sources, filepath.Join(manifest.Root, src))
			}
		}
	}

	if len(args) > 0 {
		sources = args
	}
	if len(sources) == 0 {
		return nil, 0, fmt.Errorf("no input files (pass paths or add [build] sources to %s)", project.ManifestName)
	}

	paths, err := driver.ExpandPaths(sources)
	if err != nil {
		return nil, 0, err
	}
	return paths, std, nil
}
