package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lcc/internal/diagfmt"
	"lcc/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.lc",
	Short: "Tokenize a source file",
	Long:  `Tokenize runs the lexer over one source file and prints the token sequence`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Tokenize(args[0], maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if result.Bag.HasWarnings() {
		if format == "json" {
			if err := diagfmt.JSON(os.Stderr, result.Bag, diagfmt.JSONOpts{IncludeNotes: true}); err != nil {
				return err
			}
		} else {
			opts := diagfmt.PrettyOpts{
				Color:       useColor(cmd, os.Stderr),
				ShowNotes:   true,
				ShowPreview: true,
			}
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
		}
	}

	switch format {
	case "pretty":
		diagfmt.FormatTokensPretty(os.Stdout, result.Tokens)
		return nil
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
