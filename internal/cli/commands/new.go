package commands

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conduit-lang/enumgen/internal/cli/ui"
	"github.com/conduit-lang/enumgen/internal/compiler/checker"
	cerrors "github.com/conduit-lang/enumgen/internal/compiler/errors"
)

// newAnswers holds what new asks for in interactive mode
type newAnswers struct {
	Name   string `survey:"name"`
	Values string `survey:"values"`
	Doc    string `survey:"doc"`
	Flags  bool   `survey:"flags"`
}

// askDeclaration prompts for a declaration, starting from the values in a
var askDeclaration = func(a *newAnswers) error {
	questions := []*survey.Question{
		{
			Name:     "name",
			Prompt:   &survey.Input{Message: "Type name:", Default: a.Name},
			Validate: survey.ComposeValidators(survey.Required, validateTypeName),
		},
		{
			Name:     "values",
			Prompt:   &survey.Input{Message: "Values (comma or space separated):", Default: a.Values},
			Validate: survey.Required,
		},
		{
			Name:   "doc",
			Prompt: &survey.Input{Message: "Doc comment:", Default: a.Doc},
		},
		{
			Name:   "flags",
			Prompt: &survey.Confirm{Message: "Generate a flag set?", Default: a.Flags},
		},
	}
	return survey.Ask(questions, a)
}

func validateTypeName(ans interface{}) error {
	name, _ := ans.(string)
	if !token.IsIdentifier(name) {
		return fmt.Errorf("%q is not a Go identifier", name)
	}
	return nil
}

// NewNewCommand creates the new command
func NewNewCommand() *cobra.Command {
	var (
		interactive bool
		pkg         string
		answers     newAnswers
	)

	cmd := &cobra.Command{
		Use:   "new [TypeName]",
		Short: "Create a .enum declaration file",
		Long: `Create <type>.enum in the configured source_dir. The package name
defaults to the directory name. Existing files are never overwritten.

Examples:
  enumgen new Color --values "red, green, blue"
  enumgen new Permission --flags --values "read write execute"
  enumgen new --interactive`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}
			defer env.sync()

			if len(args) == 1 {
				answers.Name = args[0]
			}
			if interactive || answers.Name == "" {
				if !interactive {
					return errors.New("type name required (or use --interactive)")
				}
				if err := askDeclaration(&answers); err != nil {
					return err
				}
			}
			if err := validateTypeName(answers.Name); err != nil {
				return err
			}

			values, err := splitValues(answers.Values)
			if err != nil {
				return err
			}

			dir := env.cfg.SourceDir
			if pkg == "" {
				pkg = packageNameFor(dir)
			}

			base := fileBase(answers.Name)
			path := filepath.Join(dir, base+".enum")
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", env.rel(path))
			}

			source, err := declaration{
				Package: pkg,
				Name:    answers.Name,
				Doc:     answers.Doc,
				Flags:   answers.Flags,
				Values:  values,
				Output:  base + env.cfg.OutputSuffix,
			}.render()
			if err != nil {
				return err
			}

			_, diags := checker.CheckSource(path, source, env.cfg.CheckerOptions())
			if diags.HasErrors() {
				fmt.Fprintln(cmd.ErrOrStderr(), cerrors.FormatErrorList(diags))
				return errReported
			}

			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", dir, err)
			}
			if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			out := cmd.OutOrStdout()
			ui.WriteSuccess(out, "Created "+env.rel(path), env.noColor)
			hint := color.New(color.FgHiBlack)
			if env.noColor {
				hint.DisableColor()
			}
			hint.Fprintf(out, "  %d %s. Run 'enumgen generate' to produce Go code.\n",
				len(values), plural(len(values), "value", "values"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for each field")
	cmd.Flags().StringVar(&answers.Values, "values", "", "Value names, e.g. \"red, green, blue\"")
	cmd.Flags().StringVar(&answers.Doc, "doc", "", "Doc comment for the type")
	cmd.Flags().BoolVar(&answers.Flags, "flags", false, "Declare a flags enum")
	cmd.Flags().StringVarP(&pkg, "package", "p", "", "Package name (default: source directory name)")

	return cmd
}
