// Package ast defines the Abstract Syntax Tree (AST) node types for enum
// declaration files.
package ast

import "github.com/conduit-lang/enumgen/internal/compiler/lexer"

// SourceLocation tracks the position of an AST node in source code
type SourceLocation struct {
	Line   int // Line number (1-indexed)
	Column int // Column number (1-indexed)
}

// Node is the base interface for all AST nodes
type Node interface {
	Location() SourceLocation
	node()
}

// Program is the root node of the AST
type Program struct {
	Package    string
	PackageLoc SourceLocation
	Enums      []*EnumNode
}

func (p *Program) node() {}

// Location returns the source location of the program node in the AST.
func (p *Program) Location() SourceLocation {
	if p.PackageLoc.Line > 0 {
		return p.PackageLoc
	}
	return SourceLocation{Line: 1, Column: 1}
}

// Enum returns the enum declared with the given name, or nil.
func (p *Program) Enum(name string) *EnumNode {
	for _, e := range p.Enums {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// EnumNode represents an enum declaration
type EnumNode struct {
	Name          string
	Documentation string
	Values        []*ValueNode
	Flags         bool // declared with the flags modifier
	Loc           SourceLocation
	NameLoc       SourceLocation
}

func (e *EnumNode) node() {}

// Location returns the source location of the enum node in the AST.
func (e *EnumNode) Location() SourceLocation {
	return e.Loc
}

// Names returns the value names in declaration order.
func (e *EnumNode) Names() []string {
	names := make([]string, len(e.Values))
	for i, v := range e.Values {
		names[i] = v.Name
	}
	return names
}

// ValueNode represents one named value of an enum
type ValueNode struct {
	Name          string
	Documentation string
	Loc           SourceLocation
}

func (v *ValueNode) node() {}

// Location returns the source location of the value node in the AST.
func (v *ValueNode) Location() SourceLocation {
	return v.Loc
}

// TokenLocation creates a SourceLocation from a lexer token
func TokenLocation(token lexer.Token) SourceLocation {
	return SourceLocation{
		Line:   token.Line,
		Column: token.Column,
	}
}
