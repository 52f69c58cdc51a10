package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conduit-lang/enumgen/internal/cli/ui"
	"github.com/conduit-lang/enumgen/internal/compiler/ast"
	"github.com/conduit-lang/enumgen/internal/compiler/checker"
	"github.com/conduit-lang/enumgen/internal/compiler/codegen"
	cerrors "github.com/conduit-lang/enumgen/internal/compiler/errors"
)

// enumReport describes the Go API generated for one enum
type enumReport struct {
	Package string        `json:"package" yaml:"package"`
	Name    string        `json:"name" yaml:"name"`
	Doc     string        `json:"doc,omitempty" yaml:"doc,omitempty"`
	Count   int           `json:"count" yaml:"count"`
	Parse   string        `json:"parse" yaml:"parse"`
	Flags   string        `json:"flags,omitempty" yaml:"flags,omitempty"`
	Width   string        `json:"width,omitempty" yaml:"width,omitempty"`
	Values  []valueReport `json:"values" yaml:"values"`
}

type valueReport struct {
	Ordinal  int    `json:"ordinal" yaml:"ordinal"`
	Name     string `json:"name" yaml:"name"`
	Constant string `json:"constant" yaml:"constant"`
	Doc      string `json:"doc,omitempty" yaml:"doc,omitempty"`
	Bit      string `json:"bit,omitempty" yaml:"bit,omitempty"`
}

// NewInspectCommand creates the inspect command
func NewInspectCommand() *cobra.Command {
	var (
		typeName string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the Go identifiers a declaration file produces",
		Long: `Show the constants, ordinals and helpers generated for each enum
in a .enum file, without writing anything.

Examples:
  enumgen inspect colors.enum
  enumgen inspect colors.enum --type Color --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "table", "json", "yaml":
			default:
				return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
			}

			env, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}
			defer env.sync()

			path := env.path(args[0])
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			prog, diags := checker.CheckSource(path, string(data), env.cfg.CheckerOptions())
			if diags.HasErrors() {
				fmt.Fprintln(cmd.ErrOrStderr(), cerrors.FormatErrorList(diags))
				return errReported
			}

			enums := prog.Enums
			if typeName != "" {
				e := prog.Enum(typeName)
				if e == nil {
					names := make([]string, len(prog.Enums))
					for i, e := range prog.Enums {
						names[i] = e.Name
					}
					fmt.Fprint(cmd.ErrOrStderr(), ui.EnumNotFound(typeName, args[0], ui.FindSimilar(typeName, names), env.noColor))
					return errReported
				}
				enums = []*ast.EnumNode{e}
			}

			reports := make([]enumReport, len(enums))
			for i, e := range enums {
				reports[i] = reportEnum(prog.Package, e, env.cfg.PrefixConstants)
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				return writeJSON(out, reports)
			case "yaml":
				return writeYAML(out, reports)
			}
			for i, r := range reports {
				if i > 0 {
					fmt.Fprintln(out)
				}
				printReport(out, r, env.noColor)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "Only show this enum")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json, yaml)")

	return cmd
}

func reportEnum(pkg string, e *ast.EnumNode, prefix bool) enumReport {
	r := enumReport{
		Package: pkg,
		Name:    e.Name,
		Doc:     e.Documentation,
		Count:   len(e.Values),
		Parse:   checker.ParseFuncName(e.Name),
	}
	if e.Flags {
		r.Flags = checker.FlagsName(e.Name)
		r.Width = codegen.FlagsWidth(len(e.Values))
	}

	for i, name := range checker.ConstantNames(e, prefix) {
		v := valueReport{
			Ordinal:  i,
			Name:     e.Values[i].Name,
			Constant: name,
			Doc:      e.Values[i].Documentation,
		}
		if e.Flags {
			v.Bit = "1 << " + strconv.Itoa(i)
		}
		r.Values = append(r.Values, v)
	}
	return r
}

func printReport(w io.Writer, r enumReport, noColor bool) {
	ui.Header(w, r.Package+"."+r.Name, noColor)
	if r.Doc != "" {
		fmt.Fprintln(w, r.Doc)
	}

	kv := ui.NewKeyValueTable(w, noColor)
	kv.AddRow("Values", strconv.Itoa(r.Count))
	kv.AddRow("Parse", r.Parse)
	if r.Flags != "" {
		kv.AddRow("Flags", fmt.Sprintf("%s (%s)", r.Flags, r.Width))
	}
	kv.Render()
	fmt.Fprintln(w)

	headers := []string{"Ordinal", "Name", "Constant"}
	if r.Flags != "" {
		headers = append(headers, "Bit")
	}
	table := ui.NewTable(w, noColor, headers...)
	for _, v := range r.Values {
		table.AddRow(strconv.Itoa(v.Ordinal), v.Name, v.Constant, v.Bit)
	}
	table.Render()
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
