// Package checker performs semantic validation of parsed enum declarations
// before any Go source is generated.
package checker

import (
	"fmt"
	"go/token"

	"github.com/conduit-lang/enumgen/internal/compiler/ast"
	"github.com/conduit-lang/enumgen/internal/compiler/errors"
	"github.com/conduit-lang/enumgen/pkg/enum"
)

// Options control which declarations the checker accepts.
type Options struct {
	// AllowDuplicates downgrades repeated value names to warnings. Name
	// lookups on such an enum resolve to the first occurrence.
	AllowDuplicates bool
	// PrefixConstants prefixes value constants with the enum type name.
	PrefixConstants bool
}

// DefaultOptions returns the options used when no configuration is present.
func DefaultOptions() Options {
	return Options{PrefixConstants: true}
}

// Checker validates a program
type Checker struct {
	opts   Options
	errors errors.ErrorList
}

// New creates a new checker
func New(opts Options) *Checker {
	return &Checker{
		opts:   opts,
		errors: make(errors.ErrorList, 0),
	}
}

// Check is the main entry point. It validates every enum in the program
// and returns the diagnostics found, warnings included.
func (c *Checker) Check(prog *ast.Program) errors.ErrorList {
	c.errors = make(errors.ErrorList, 0)

	if prog.Package != "" {
		c.checkGoName(prog.PackageLoc, prog.Package)
	}

	declared := make(map[string]*ast.EnumNode)
	for _, e := range prog.Enums {
		if first, ok := declared[e.Name]; ok {
			c.add(errors.NewDuplicateEnum(e.Loc, e.Name, first.Loc))
			continue
		}
		declared[e.Name] = e
		c.checkEnum(e)
	}

	c.checkCollisions(prog)

	return c.errors
}

// checkEnum validates a single enum declaration
func (c *Checker) checkEnum(e *ast.EnumNode) {
	if !c.checkGoName(e.Loc, e.Name) {
		return
	}

	switch n := len(e.Values); {
	case n == 0:
		c.add(errors.NewEmptyEnum(e.Loc, e.Name))
		return
	case n > enum.MaxValues:
		c.add(errors.NewTooManyValues(e.Values[enum.MaxValues].Loc, e.Name, n, enum.MaxValues))
	}

	firstByName := make(map[string]*ast.ValueNode, len(e.Values))
	for _, v := range e.Values {
		first, dup := firstByName[v.Name]
		if !dup {
			firstByName[v.Name] = v
			continue
		}
		err := errors.NewDuplicateValue(v.Loc, e.Name, v.Name, first.Loc)
		if c.opts.AllowDuplicates {
			err.AsWarning()
		}
		c.add(err)
	}

	c.checkEnumIdentifiers(e)
}

// checkEnumIdentifiers verifies that the identifiers generated for one enum
// are valid Go and distinct from each other.
func (c *Checker) checkEnumIdentifiers(e *ast.EnumNode) {
	byName := make(map[string]Ident)
	for _, id := range Identifiers(e, c.opts.PrefixConstants) {
		if importNames[id.Name] {
			loc := e.Loc
			if id.Value != nil {
				loc = id.Value.Loc
			}
			c.add(errors.NewImportCollision(loc, id.Name, e.Name))
			continue
		}
		if id.Kind == IdentConstant {
			if !token.IsIdentifier(id.Name) {
				c.add(errors.NewInvalidGoIdentifier(id.Value.Loc, id.Value.Name,
					fmt.Sprintf("generated constant %q is not a Go identifier", id.Name)).
					WithEnum(e.Name).
					WithValue(id.Value.Name))
				continue
			}
		}

		prev, taken := byName[id.Name]
		if !taken {
			byName[id.Name] = id
			continue
		}
		if id.Kind != IdentConstant {
			continue
		}
		owner := fmt.Sprintf("the %s identifier", prev.Kind)
		if prev.Value != nil {
			owner = fmt.Sprintf("value '%s'", prev.Value.Name)
		}
		c.add(errors.NewConstantCollision(id.Value.Loc, e.Name, id.Value.Name, owner, id.Name))
	}
}

// checkCollisions reports identifiers generated by more than one enum
func (c *Checker) checkCollisions(prog *ast.Program) {
	owners := make(map[string]*ast.EnumNode)

	for _, e := range prog.Enums {
		if prev, ok := owners[e.Name]; ok && prev.Name == e.Name {
			// Duplicate enum names are reported by Check.
			continue
		}

		for _, id := range Identifiers(e, c.opts.PrefixConstants) {
			prev, taken := owners[id.Name]
			if !taken {
				owners[id.Name] = e
				continue
			}
			if prev == e {
				continue
			}
			loc := e.Loc
			if id.Value != nil {
				loc = id.Value.Loc
			}
			c.add(errors.NewIdentifierCollision(loc, id.Name, e.Name, prev.Name))
		}
	}
}

// checkGoName verifies that a declared name can be used verbatim in Go
func (c *Checker) checkGoName(loc ast.SourceLocation, name string) bool {
	if token.IsKeyword(name) {
		c.add(errors.NewGoReservedWord(loc, name))
		return false
	}
	if !token.IsIdentifier(name) {
		c.add(errors.NewInvalidGoIdentifier(loc, name, "not a Go identifier"))
		return false
	}
	return true
}

func (c *Checker) add(err *errors.CompilerError) {
	c.errors = append(c.errors, err)
}
