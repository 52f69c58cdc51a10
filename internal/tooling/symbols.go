package tooling

import (
	"fmt"
	"strings"

	"github.com/conduit-lang/enumgen/internal/compiler/ast"
	"github.com/conduit-lang/enumgen/internal/compiler/checker"
	"github.com/conduit-lang/enumgen/internal/compiler/codegen"
)

// SymbolKind classifies outline entries
type SymbolKind int

const (
	SymbolPackage SymbolKind = iota
	SymbolEnum
	SymbolValue
)

// Symbol is an outline entry of a declaration file
type Symbol struct {
	Name          string
	Kind          SymbolKind
	Range         Range // the whole declaration
	Selection     Range // the name
	Detail        string
	Documentation string
	Children      []*Symbol

	// Go names generated for the symbol
	GoName    string
	Container string
	Ordinal   int
	Count     int
	FlagsName string
	Width     string
}

func buildSymbols(doc *Document, prefix bool) []*Symbol {
	prog := doc.Program
	var out []*Symbol

	if prog.Package != "" {
		sel := doc.wordRange(prog.PackageLoc)
		sel = doc.nextWordRange(sel.End)
		out = append(out, &Symbol{
			Name:      prog.Package,
			Kind:      SymbolPackage,
			Range:     sel,
			Selection: sel,
			Detail:    "package",
		})
	}

	for _, e := range prog.Enums {
		sym := &Symbol{
			Name:          e.Name,
			Kind:          SymbolEnum,
			Selection:     doc.wordRange(e.NameLoc),
			Documentation: e.Documentation,
			GoName:        e.Name,
			Count:         len(e.Values),
		}
		sym.Range = Range{Start: doc.position(e.Loc), End: sym.Selection.End}

		sym.Detail = fmt.Sprintf("%d values", len(e.Values))
		if e.Flags {
			sym.FlagsName = checker.FlagsName(e.Name)
			sym.Width = codegen.FlagsWidth(len(e.Values))
			sym.Detail += ", flags"
		}

		constants := checker.ConstantNames(e, prefix)
		for i, v := range e.Values {
			sel := doc.wordRange(v.Loc)
			sym.Children = append(sym.Children, &Symbol{
				Name:          v.Name,
				Kind:          SymbolValue,
				Range:         sel,
				Selection:     sel,
				Detail:        fmt.Sprintf("%s = %d", constants[i], i),
				Documentation: v.Documentation,
				GoName:        constants[i],
				Container:     e.Name,
				Ordinal:       i,
				Count:         len(e.Values),
				FlagsName:     sym.FlagsName,
				Width:         sym.Width,
			})
			sym.Range.End = sel.End
		}
		if end, ok := doc.closingBrace(sym.Range.End); ok {
			sym.Range.End = end
		}

		out = append(out, sym)
	}

	return out
}

// findSymbol returns the innermost symbol whose name is at pos
func findSymbol(symbols []*Symbol, pos Position) *Symbol {
	for _, s := range symbols {
		if s.Selection.Contains(pos) {
			return s
		}
		if s.Range.Contains(pos) {
			if child := findSymbol(s.Children, pos); child != nil {
				return child
			}
		}
	}
	return nil
}

func splitLines(content string) []string {
	return strings.Split(content, "\n")
}

// position converts a one-based source location
func (d *Document) position(loc ast.SourceLocation) Position {
	return Position{Line: max(loc.Line-1, 0), Character: max(loc.Column-1, 0)}
}

// wordRange spans the identifier starting at loc, or a single character
// when loc is not on an identifier
func (d *Document) wordRange(loc ast.SourceLocation) Range {
	start := d.position(loc)
	end := Position{Line: start.Line, Character: start.Character + 1}
	if start.Line >= len(d.lines) {
		return Range{Start: start, End: end}
	}

	line := d.lines[start.Line]
	i := start.Character
	for i < len(line) && isWordByte(line[i]) {
		i++
	}
	if i > start.Character {
		end.Character = i
	}
	return Range{Start: start, End: end}
}

// nextWordRange spans the first identifier at or after pos on its line
func (d *Document) nextWordRange(pos Position) Range {
	if pos.Line >= len(d.lines) {
		return Range{Start: pos, End: pos}
	}
	line := d.lines[pos.Line]
	i := pos.Character
	for i < len(line) && !isWordByte(line[i]) {
		i++
	}
	return d.wordRange(ast.SourceLocation{Line: pos.Line + 1, Column: i + 1})
}

// closingBrace finds the first '}' at or after pos
func (d *Document) closingBrace(pos Position) (Position, bool) {
	for l := pos.Line; l < len(d.lines); l++ {
		from := 0
		if l == pos.Line {
			from = min(pos.Character, len(d.lines[l]))
		}
		if i := strings.IndexByte(d.lines[l][from:], '}'); i >= 0 {
			return Position{Line: l, Character: from + i + 1}, true
		}
	}
	return Position{}, false
}

func isWordByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
