// Package codegen generates Go source for enum declarations. Each enum
// becomes a uint8-based type with named constants, a metadata table
// registered with the runtime package, and the methods that make it
// satisfy enum.Enum.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"path"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/conduit-lang/enumgen/internal/compiler/ast"
	"github.com/conduit-lang/enumgen/internal/compiler/checker"
)

// DefaultRuntimeImport is the import path of the runtime library used by
// generated code.
const DefaultRuntimeImport = "github.com/conduit-lang/enumgen/pkg/enum"

// Header is the first line of every generated file.
const Header = "// Code generated by enumgen. DO NOT EDIT."

// Options configure a Generator
type Options struct {
	// RuntimeImport is the import path of the runtime library.
	RuntimeImport string
	// PrefixConstants prefixes value constants with their type name.
	PrefixConstants bool
	// Source is the declaration file recorded in the header.
	Source string
}

// Generator transforms AST nodes into Go code
type Generator struct {
	opts    Options
	buf     *bytes.Buffer
	indent  int
	imports map[string]string // import path -> explicit name, "" if none
}

// NewGenerator creates a new code generator
func NewGenerator(opts Options) *Generator {
	if opts.RuntimeImport == "" {
		opts.RuntimeImport = DefaultRuntimeImport
	}
	return &Generator{
		opts:    opts,
		buf:     &bytes.Buffer{},
		imports: make(map[string]string),
	}
}

// GenerateFile generates a formatted Go file holding every enum of prog.
// When formatting fails the unformatted source is returned with the error.
func (g *Generator) GenerateFile(prog *ast.Program) ([]byte, error) {
	g.reset()

	if prog.Package == "" {
		return nil, fmt.Errorf("codegen: program has no package name")
	}
	if len(prog.Enums) == 0 {
		return nil, fmt.Errorf("codegen: package %s declares no enums", prog.Package)
	}

	body := g.generateBody(prog.Enums)

	g.writeLine(Header)
	if g.opts.Source != "" {
		g.writeLine("// Source: %s", g.opts.Source)
	}
	g.writeLine("")
	g.writeLine("package %s", prog.Package)
	g.writeLine("")
	g.writeImports()
	g.buf.Write(body)

	src := g.buf.Bytes()
	formatted, err := format.Source(src)
	if err != nil {
		return src, fmt.Errorf("codegen: formatting generated code: %w", err)
	}
	return formatted, nil
}

// generateBody renders the declarations first so the import set is known
// before the file header is written.
func (g *Generator) generateBody(enums []*ast.EnumNode) []byte {
	for _, e := range enums {
		if len(e.Values) == 0 {
			continue
		}
		g.generateEnum(e)
	}
	body := bytes.Clone(g.buf.Bytes())
	g.buf.Reset()
	return body
}

// generateEnum writes the type, constants, metadata and methods of one enum
func (g *Generator) generateEnum(e *ast.EnumNode) {
	rt := g.addImport(g.opts.RuntimeImport, checker.RuntimeImportName)
	g.addImport("fmt", "")

	typ := e.Name
	consts := checker.ConstantNames(e, g.opts.PrefixConstants)
	info := checker.InfoVarName(typ)
	recv := receiverName(typ)

	// Type
	if e.Documentation != "" {
		g.writeDoc(e.Documentation)
	} else {
		g.writeLine("// %s is an enumeration of %d values.", typ, len(e.Values))
	}
	g.writeLine("type %s uint8", typ)
	g.writeLine("")

	// Constants
	g.writeLine("const (")
	g.indent++
	for i, v := range e.Values {
		if v.Documentation != "" {
			g.writeDoc(v.Documentation)
		}
		if i == 0 {
			g.writeLine("%s %s = iota", consts[i], typ)
		} else {
			g.writeLine("%s", consts[i])
		}
	}
	g.indent--
	g.writeLine(")")
	g.writeLine("")

	g.writeLine("// %s is the number of %s values.", checker.CountName(typ), typ)
	g.writeLine("const %s = %d", checker.CountName(typ), len(e.Values))
	g.writeLine("")

	// Staleness guard, in the style of stringer.
	g.writeLine("func _() {")
	g.indent++
	g.writeLine("// An \"invalid array index\" compiler error signifies that the constant values have changed.")
	g.writeLine("// Re-run enumgen to generate them again.")
	g.writeLine("var x [1]struct{}")
	for i, c := range consts {
		g.writeLine("_ = x[%s-%d]", c, i)
	}
	g.indent--
	g.writeLine("}")
	g.writeLine("")

	// Metadata
	g.writeLine("var %s = %s.NewInfo(%s)", info, rt, quoteAll(e.Names()))
	g.writeLine("")

	g.writeLine("// EnumInfo returns the metadata shared by all %s values.", typ)
	g.writeLine("func (%s) EnumInfo() *%s.Info { return %s }", typ, rt, info)
	g.writeLine("")

	g.writeLine("// String returns the declared name of %s.", recv)
	g.writeLine("func (%s %s) String() string {", recv, typ)
	g.indent++
	g.writeLine("if !%s.Valid() {", recv)
	g.writeLine("\treturn fmt.Sprintf(\"%s(%%d)\", uint8(%s))", typ, recv)
	g.writeLine("}")
	g.writeLine("return %s.Name(int(%s))", info, recv)
	g.indent--
	g.writeLine("}")
	g.writeLine("")

	g.writeLine("// Valid reports whether %s is a declared %s.", recv, typ)
	g.writeLine("func (%s %s) Valid() bool { return %s.Valid(%s) }", recv, typ, rt, recv)
	g.writeLine("")

	g.writeLine("// Next returns the value after %s, wrapping to the first.", recv)
	g.writeLine("func (%s %s) Next() %s { return %s.Next(%s) }", recv, typ, typ, rt, recv)
	g.writeLine("")

	g.writeLine("// Prev returns the value before %s, wrapping to the last.", recv)
	g.writeLine("func (%s %s) Prev() %s { return %s.Prev(%s) }", recv, typ, typ, rt, recv)
	g.writeLine("")

	g.writeLine("// MarshalText implements encoding.TextMarshaler.")
	g.writeLine("func (%s %s) MarshalText() ([]byte, error) {", recv, typ)
	g.indent++
	g.writeLine("if !%s.Valid() {", recv)
	g.writeLine("\treturn nil, fmt.Errorf(\"invalid %s value %%d\", uint8(%s))", typ, recv)
	g.writeLine("}")
	g.writeLine("return []byte(%s.String()), nil", recv)
	g.indent--
	g.writeLine("}")
	g.writeLine("")

	g.writeLine("// UnmarshalText implements encoding.TextUnmarshaler.")
	g.writeLine("func (%s *%s) UnmarshalText(text []byte) error {", recv, typ)
	g.indent++
	g.writeLine("parsed, err := %s(string(text))", checker.ParseFuncName(typ))
	g.writeLine("if err != nil {")
	g.writeLine("\treturn err")
	g.writeLine("}")
	g.writeLine("*%s = parsed", recv)
	g.writeLine("return nil")
	g.indent--
	g.writeLine("}")
	g.writeLine("")

	g.writeLine("// %s returns the %s declared with name.", checker.ParseFuncName(typ), typ)
	g.writeLine("func %s(name string) (%s, error) { return %s.Parse[%s](name) }",
		checker.ParseFuncName(typ), typ, rt, typ)
	g.writeLine("")

	if e.Flags {
		g.generateFlags(e, rt, recv)
	}
}

// generateFlags writes the flags alias, the width assertion and the
// combinators that lift single values into sets
func (g *Generator) generateFlags(e *ast.EnumNode, rt, recv string) {
	typ := e.Name
	flags := checker.FlagsName(typ)
	width := FlagsWidth(len(e.Values))

	g.writeLine("// %s is a set of %s values.", flags, typ)
	g.writeLine("type %s = %s.Flags[%s, %s]", flags, rt, typ, width)
	g.writeLine("")
	g.writeLine("// Every %s value must have a bit in %s.", typ, width)
	g.writeLine("const _ = %s(1 << (%s - 1))", width, checker.CountName(typ))
	g.writeLine("")

	g.writeLine("// Flags returns the set holding only %s.", recv)
	g.writeLine("func (%s %s) Flags() %s { return %s.FlagsOf[%s, %s](%s) }", recv, typ, flags, rt, typ, width, recv)
	g.writeLine("")

	for _, op := range []struct{ name, doc string }{
		{"Or", "holding both values"},
		{"And", "holding the values common to both operands"},
		{"Xor", "holding the values in exactly one operand"},
	} {
		g.writeLine("// %s returns the set %s.", op.name, op.doc)
		g.writeLine("func (%s %s) %s(other %s) %s { return %s.%s[%s](%s, other) }",
			recv, typ, op.name, typ, flags, rt, op.name, width, recv)
		g.writeLine("")
	}

	g.writeLine("// Not returns the set of every %s except %s.", typ, recv)
	g.writeLine("func (%s %s) Not() %s { return %s.Not[%s](%s) }", recv, typ, flags, rt, width, recv)
	g.writeLine("")
}

// FlagsWidth returns the smallest unsigned integer type with a bit for each
// of n values.
func FlagsWidth(n int) string {
	switch {
	case n <= 8:
		return "uint8"
	case n <= 16:
		return "uint16"
	case n <= 32:
		return "uint32"
	default:
		return "uint64"
	}
}

// addImport records an import and returns the name code should use for it
func (g *Generator) addImport(importPath, name string) string {
	base := path.Base(importPath)
	if name == "" || name == base {
		g.imports[importPath] = ""
		return base
	}
	g.imports[importPath] = name
	return name
}

// reset clears the generator state
func (g *Generator) reset() {
	g.buf.Reset()
	g.indent = 0
	g.imports = make(map[string]string)
}

// writeLine writes a formatted line with proper indentation
func (g *Generator) writeLine(format string, args ...interface{}) {
	if format == "" {
		g.buf.WriteString("\n")
		return
	}

	for i := 0; i < g.indent; i++ {
		g.buf.WriteString("\t")
	}

	if len(args) > 0 {
		fmt.Fprintf(g.buf, format, args...)
	} else {
		g.buf.WriteString(format)
	}
	g.buf.WriteString("\n")
}

// writeDoc writes documentation text as // comment lines
func (g *Generator) writeDoc(doc string) {
	for _, line := range strings.Split(doc, "\n") {
		g.writeLine("// %s", line)
	}
}

// writeImports writes the import block: stdlib first, then external
func (g *Generator) writeImports() {
	if len(g.imports) == 0 {
		return
	}

	g.writeLine("import (")
	g.indent++

	var stdlibImports []string
	var externalImports []string

	for imp := range g.imports {
		if strings.Contains(imp, ".") {
			externalImports = append(externalImports, imp)
		} else {
			stdlibImports = append(stdlibImports, imp)
		}
	}
	sort.Strings(stdlibImports)
	sort.Strings(externalImports)

	for _, imp := range stdlibImports {
		g.writeLine("%q", imp)
	}

	if len(stdlibImports) > 0 && len(externalImports) > 0 {
		g.writeLine("")
	}

	for _, imp := range externalImports {
		if name := g.imports[imp]; name != "" {
			g.writeLine("%s %q", name, imp)
		} else {
			g.writeLine("%q", imp)
		}
	}

	g.indent--
	g.writeLine(")")
	g.writeLine("")
}

// receiverName picks a short receiver for methods on typ
func receiverName(typ string) string {
	r, _ := utf8.DecodeRuneInString(typ)
	recv := string(unicode.ToLower(r))
	if recv == typ {
		recv += "v"
	}
	return recv
}

// quoteAll renders names as a comma separated list of Go string literals
func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = strconv.Quote(n)
	}
	return strings.Join(quoted, ", ")
}
