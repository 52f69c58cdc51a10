package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conduit-lang/enumgen/internal/cli/ui"
	cerrors "github.com/conduit-lang/enumgen/internal/compiler/errors"
	"github.com/conduit-lang/enumgen/internal/generate"
)

// NewCheckCommand creates the check command
func NewCheckCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Validate .enum files without writing code",
		Long: `Lex, parse and check .enum declaration files and report every
diagnostic. Nothing is written. The exit status is non-zero when any
file has errors; warnings alone do not fail the check.

Examples:
  enumgen check
  enumgen check colors.enum --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}

			env, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}
			defer env.sync()

			runner := generate.NewRunner(env.cfg, env.logger)
			runner.DryRun = true

			summary, err := runner.Run(cmd.Context(), env.resolve(args)...)
			if err != nil {
				return err
			}

			diags := summary.Diagnostics()
			if diags == nil {
				diags = cerrors.ErrorList{}
			}

			out := cmd.OutOrStdout()
			switch {
			case format == "json":
				if err := writeJSON(out, diags); err != nil {
					return err
				}
			case len(diags) == 0:
				ui.WriteSuccess(out, fmt.Sprintf("%d %s OK", len(summary.Files), plural(len(summary.Files), "file", "files")), env.noColor)
			default:
				fmt.Fprintln(out, cerrors.FormatErrorList(diags))
			}

			if diags.HasErrors() {
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, json)")

	return cmd
}
