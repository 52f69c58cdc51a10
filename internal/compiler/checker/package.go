package checker

import (
	"github.com/conduit-lang/enumgen/internal/compiler/ast"
	"github.com/conduit-lang/enumgen/internal/compiler/errors"
)

// File is a checked declaration file
type File struct {
	Path    string
	Program *ast.Program
}

// CheckPackage validates declaration files that generate into the same
// directory, and therefore the same Go package. Each file is expected to
// have passed Check on its own.
func (c *Checker) CheckPackage(files []File) errors.ErrorList {
	c.errors = make(errors.ErrorList, 0)
	if len(files) < 2 {
		return c.errors
	}

	first := files[0]
	for _, f := range files[1:] {
		if f.Program.Package != first.Program.Package {
			c.addIn(f.Path, errors.NewPackageMismatch(f.Program.Location(),
				f.Program.Package, first.Program.Package, first.Path))
		}
	}

	type owner struct {
		path string
		enum *ast.EnumNode
	}
	enums := make(map[string]owner)
	idents := make(map[string]owner)

	for _, f := range files {
		for _, e := range f.Program.Enums {
			if prev, ok := enums[e.Name]; ok {
				c.addIn(f.Path, errors.NewDuplicateEnum(e.Loc, e.Name, prev.enum.Loc).
					WithSuggestion("Enum '"+e.Name+"' is also declared in "+prev.path))
				continue
			}
			enums[e.Name] = owner{f.Path, e}

			for _, id := range Identifiers(e, c.opts.PrefixConstants) {
				prev, taken := idents[id.Name]
				if !taken {
					idents[id.Name] = owner{f.Path, e}
					continue
				}
				if prev.path == f.Path {
					// Same-file collisions are reported by Check.
					continue
				}
				loc := e.Loc
				if id.Value != nil {
					loc = id.Value.Loc
				}
				c.addIn(f.Path, errors.NewIdentifierCollision(loc, id.Name, e.Name, prev.enum.Name))
			}
		}
	}

	return c.errors
}

func (c *Checker) addIn(path string, err *errors.CompilerError) {
	c.add(err.WithFile(path))
}
