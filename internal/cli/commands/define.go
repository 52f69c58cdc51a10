package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conduit-lang/enumgen/internal/cli/ui"
	"github.com/conduit-lang/enumgen/internal/compiler/cache"
	"github.com/conduit-lang/enumgen/internal/compiler/checker"
	"github.com/conduit-lang/enumgen/internal/compiler/codegen"
	cerrors "github.com/conduit-lang/enumgen/internal/compiler/errors"
)

// NewDefineCommand creates the define command
func NewDefineCommand() *cobra.Command {
	var (
		pkg    string
		output string
		doc    string
		flags  bool
	)

	cmd := &cobra.Command{
		Use:   "define <Type> <names...>",
		Short: "Generate one enum type without a .enum file",
		Long: `Generate Go code for a single enum straight from the command line,
typically from a go:generate directive. Names may be separated by commas,
whitespace, or both, exactly as inside an enum body.

The package defaults to $GOPACKAGE, which go generate sets. The output
defaults to <type>_enum.go (see output_suffix); "-" prints to stdout.

Examples:
  //go:generate enumgen define Color red green blue
  //go:generate enumgen define Permission --flags "read, write, execute"
  enumgen define Weekday mon tue wed thu fri sat sun -p calendar -o -`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}
			defer env.sync()

			if pkg == "" {
				pkg = os.Getenv("GOPACKAGE")
			}
			if pkg == "" {
				return fmt.Errorf("package name required: pass --package or run from go generate")
			}

			typeName := args[0]
			values, err := splitValues(strings.Join(args[1:], " "))
			if err != nil {
				return err
			}

			source, err := declaration{Package: pkg, Name: typeName, Doc: doc, Flags: flags, Values: values}.render()
			if err != nil {
				return err
			}

			const file = "<define>"
			prog, diags := checker.CheckSource(file, source, env.cfg.CheckerOptions())
			for _, d := range diags {
				fmt.Fprintln(cmd.ErrOrStderr(), cerrors.FormatCompact(d))
			}
			if diags.HasErrors() {
				return errReported
			}

			code, err := codegen.NewGenerator(env.cfg.CodegenOptions("enumgen define " + typeName)).GenerateFile(prog)
			if err != nil {
				return fmt.Errorf("failed to generate %s: %w", typeName, err)
			}

			if output == "-" {
				_, err := cmd.OutOrStdout().Write(code)
				return err
			}
			if output == "" {
				output = fileBase(typeName) + env.cfg.OutputSuffix
			}
			path := env.path(output)

			if cache.NewFileHasher().SameContent(path, code) {
				env.logger.Debug("output unchanged", zap.String("output", path))
				return nil
			}
			if err := os.WriteFile(path, code, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			ui.WriteSuccess(cmd.OutOrStdout(), fmt.Sprintf("%s → %s", typeName, env.rel(path)), env.noColor)
			return nil
		},
	}

	cmd.Flags().StringVarP(&pkg, "package", "p", "", "Package name of the generated file (default $GOPACKAGE)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, or - for stdout")
	cmd.Flags().StringVar(&doc, "doc", "", "Doc comment for the type")
	cmd.Flags().BoolVar(&flags, "flags", false, "Also generate a flag set type")

	return cmd
}
