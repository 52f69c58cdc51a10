package checker

import (
	"fmt"

	"github.com/conduit-lang/enumgen/internal/compiler/ast"
	ustrings "github.com/conduit-lang/enumgen/internal/util/strings"
)

// IdentKind classifies a package-level identifier produced for an enum.
type IdentKind string

const (
	IdentType     IdentKind = "type"
	IdentConstant IdentKind = "constant"
	IdentCount    IdentKind = "count"
	IdentInfo     IdentKind = "info"
	IdentParse    IdentKind = "parse"
	IdentFlags    IdentKind = "flags"
)

// RuntimeImportName is the name generated files use for the runtime package.
const RuntimeImportName = "enum"

// importNames are the packages every generated file imports.
var importNames = map[string]bool{RuntimeImportName: true, "fmt": true}

// Ident is a generated package-level identifier.
type Ident struct {
	Name  string
	Kind  IdentKind
	Value *ast.ValueNode // set for constants
}

// ConstantName returns the Go constant emitted for value of enum typeName.
func ConstantName(typeName, value string, prefix bool) string {
	name := ustrings.ToPascalCase(value)
	if prefix {
		return typeName + name
	}
	return name
}

// ConstantNames returns the constant for each value in declaration order.
// Repeated names, which only survive checking when duplicates are allowed,
// get their ordinal appended so every constant stays unique.
func ConstantNames(e *ast.EnumNode, prefix bool) []string {
	seen := make(map[string]bool, len(e.Values))
	out := make([]string, len(e.Values))
	for i, v := range e.Values {
		name := ConstantName(e.Name, v.Name, prefix)
		if seen[v.Name] {
			name = fmt.Sprintf("%s_%d", name, i)
		}
		seen[v.Name] = true
		out[i] = name
	}
	return out
}

// CountName returns the name of the value-count constant.
func CountName(typeName string) string { return typeName + "Count" }

// FlagsName returns the name of the flags type alias.
func FlagsName(typeName string) string { return typeName + "Flags" }

// ParseFuncName returns the name of the generated parse function.
func ParseFuncName(typeName string) string { return "Parse" + typeName }

// InfoVarName returns the name of the unexported metadata variable.
func InfoVarName(typeName string) string { return ustrings.ToLowerCamel(typeName) + "Info" }

// Identifiers lists every package-level identifier generated for e.
func Identifiers(e *ast.EnumNode, prefix bool) []Ident {
	idents := []Ident{
		{Name: e.Name, Kind: IdentType},
		{Name: CountName(e.Name), Kind: IdentCount},
		{Name: InfoVarName(e.Name), Kind: IdentInfo},
		{Name: ParseFuncName(e.Name), Kind: IdentParse},
	}
	if e.Flags {
		idents = append(idents, Ident{Name: FlagsName(e.Name), Kind: IdentFlags})
	}
	for i, name := range ConstantNames(e, prefix) {
		idents = append(idents, Ident{Name: name, Kind: IdentConstant, Value: e.Values[i]})
	}
	return idents
}
