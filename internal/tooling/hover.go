package tooling

import (
	"fmt"
	"strings"

	"github.com/conduit-lang/enumgen/internal/compiler/checker"
)

// Hover is markdown shown for a symbol
type Hover struct {
	Contents string
	Range    Range
}

func buildHover(sym *Symbol) *Hover {
	var b strings.Builder

	b.WriteString("```go\n")
	switch sym.Kind {
	case SymbolPackage:
		fmt.Fprintf(&b, "package %s\n", sym.Name)
	case SymbolEnum:
		fmt.Fprintf(&b, "type %s uint8\n", sym.GoName)
		if sym.FlagsName != "" {
			fmt.Fprintf(&b, "type %s = enum.Flags[%s, %s]\n", sym.FlagsName, sym.GoName, sym.Width)
		}
	case SymbolValue:
		fmt.Fprintf(&b, "const %s %s = %d\n", sym.GoName, sym.Container, sym.Ordinal)
	}
	b.WriteString("```\n")

	if sym.Documentation != "" {
		b.WriteString("\n")
		b.WriteString(sym.Documentation)
		b.WriteString("\n")
	}

	switch sym.Kind {
	case SymbolEnum:
		fmt.Fprintf(&b, "\n%d values, `%s`, `%s`\n",
			sym.Count, checker.CountName(sym.GoName), checker.ParseFuncName(sym.GoName))
	case SymbolValue:
		fmt.Fprintf(&b, "\nOrdinal %d of %d, `String()` returns `%q`\n", sym.Ordinal, sym.Count, sym.Name)
		if sym.FlagsName != "" && sym.Ordinal < 64 {
			fmt.Fprintf(&b, "\nFlag bit `1 << %d` in `%s`\n", sym.Ordinal, sym.FlagsName)
		}
	}

	return &Hover{Contents: b.String(), Range: sym.Selection}
}
