package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conduit-lang/enumgen/internal/cli/ui"
	cerrors "github.com/conduit-lang/enumgen/internal/compiler/errors"
	"github.com/conduit-lang/enumgen/internal/generate"
)

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	var (
		dryRun  bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:     "generate [paths...]",
		Aliases: []string{"gen", "g"},
		Short:   "Generate Go code from .enum files",
		Long: `Compile .enum declaration files into Go source.

Each colors.enum produces colors_enum.go next to it (see output_suffix).
Directories are searched recursively; without arguments the configured
source_dir is used. Files whose output is already up to date are left
untouched, so generate is cheap to run from go:generate.

Examples:
  enumgen generate
  enumgen generate internal/model
  enumgen generate --dry-run colors.enum
  enumgen generate --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}
			defer env.sync()

			runner := generate.NewRunner(env.cfg, env.logger)
			runner.DryRun = dryRun

			summary, err := runner.Run(cmd.Context(), env.resolve(args)...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				if err := writeJSON(out, summary); err != nil {
					return err
				}
			} else {
				printSummary(out, env, summary)
			}

			if summary.HasErrors() {
				if !jsonOut {
					fmt.Fprint(cmd.ErrOrStderr(), ui.GenerateFailed(summary.Count(generate.StatusFailed), env.noColor))
				}
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Report what would be written without writing")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the result as JSON")

	return cmd
}

// printSummary writes one line per file, its diagnostics, and a total
func printSummary(w io.Writer, env *environment, summary *generate.Summary) {
	green := color.New(color.FgGreen)
	gray := color.New(color.FgHiBlack)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)
	if env.noColor {
		green.DisableColor()
		gray.DisableColor()
		red.DisableColor()
		yellow.DisableColor()
	}

	for _, f := range summary.Files {
		src, dst := env.rel(f.Source), env.rel(f.Output)
		switch f.Status {
		case generate.StatusWritten:
			green.Fprintf(w, "✓ %s → %s\n", src, dst)
		case generate.StatusDryRun:
			yellow.Fprintf(w, "~ %s → %s (dry run)\n", src, dst)
		case generate.StatusUnchanged:
			gray.Fprintf(w, "  %s (unchanged)\n", src)
		default:
			red.Fprintf(w, "✗ %s\n", src)
		}
		for _, d := range f.Diagnostics {
			fmt.Fprintf(w, "    %s\n", cerrors.FormatCompact(d))
		}
	}

	parts := []string{}
	for _, s := range []generate.Status{generate.StatusWritten, generate.StatusDryRun, generate.StatusUnchanged, generate.StatusFailed} {
		if n := summary.Count(s); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, s))
		}
	}
	if len(parts) == 0 {
		gray.Fprintln(w, "No .enum files found")
		return
	}
	fmt.Fprintf(w, "%d %s: %s\n", len(summary.Files), plural(len(summary.Files), "file", "files"), strings.Join(parts, ", "))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
