package commands

import (
	"bytes"
	"embed"
	"fmt"
	"go/token"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	"github.com/conduit-lang/enumgen/internal/compiler/checker"
	"github.com/conduit-lang/enumgen/internal/compiler/lexer"
	ustrings "github.com/conduit-lang/enumgen/internal/util/strings"
)

//go:embed templates/*
var templatesFS embed.FS

var declarationTemplate = template.Must(template.ParseFS(templatesFS, "templates/declaration.enum.tmpl"))

// declaration is the input of the declaration template
type declaration struct {
	Package string
	Name    string
	Doc     string
	Flags   bool
	Values  []string
	Output  string // generated file, mentioned in a header comment when set
}

// render produces .enum source for d. Doc is folded onto one line.
func (d declaration) render() (string, error) {
	d.Doc = strings.Join(strings.Fields(d.Doc), " ")

	var buf bytes.Buffer
	if err := declarationTemplate.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("failed to render declaration: %w", err)
	}
	return buf.String(), nil
}

// fileBase is the file name stem used for a type: Color becomes color
func fileBase(typeName string) string {
	return ustrings.ToSnakeCase(typeName)
}

// splitValues splits a raw name list the way an enum body is split
func splitValues(raw string) ([]string, error) {
	names, errs := lexer.SplitNames(raw)
	if len(errs) > 0 {
		diags := checker.SplitErrors(errs)
		return nil, fmt.Errorf("invalid value list: %s", diags[0].Message)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("at least one value name is required")
	}
	return names, nil
}

// packageNameFor derives a Go package name from a directory
func packageNameFor(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "enums"
	}

	var b strings.Builder
	for _, r := range strings.ToLower(filepath.Base(abs)) {
		if r == '_' || unicode.IsLetter(r) || (unicode.IsDigit(r) && b.Len() > 0) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 || !token.IsIdentifier(b.String()) {
		return "enums"
	}
	return b.String()
}
