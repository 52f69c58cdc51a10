package checker

import (
	"strings"

	"github.com/conduit-lang/enumgen/internal/compiler/ast"
	"github.com/conduit-lang/enumgen/internal/compiler/errors"
	"github.com/conduit-lang/enumgen/internal/compiler/lexer"
	"github.com/conduit-lang/enumgen/internal/compiler/parser"
)

// CheckSource lexes, parses and checks a declaration file. Semantic checks
// run only when the file is syntactically valid. The returned program is
// never nil, so callers can still offer symbols for a broken file.
func CheckSource(file, source string, opts Options) (*ast.Program, errors.ErrorList) {
	var diags errors.ErrorList

	tokens, lexErrors := lexer.New(source).ScanTokens()
	for _, le := range lexErrors {
		diags = append(diags, errors.NewInvalidCharacter(
			ast.SourceLocation{Line: le.Line, Column: le.Column}, le.Lexeme))
	}

	program, parseErrors := parser.New(tokens).Parse()
	for _, pe := range parseErrors {
		diags = append(diags, fromParseError(pe))
	}

	if len(diags) == 0 {
		diags = New(opts).Check(program)
	}

	return program, withSource(diags.WithFile(file), source)
}

// SplitErrors converts SplitNames errors into diagnostics.
func SplitErrors(errs []lexer.LexError) errors.ErrorList {
	diags := make(errors.ErrorList, 0, len(errs))
	for _, le := range errs {
		loc := ast.SourceLocation{Line: le.Line, Column: le.Column}
		if strings.HasPrefix(le.Message, "too many names") {
			diags = append(diags, errors.NewTooManyNames(loc, lexer.MaxNames))
			continue
		}
		diags = append(diags, errors.NewEmptyValueName(loc))
	}
	return diags
}

func fromParseError(pe parser.ParseError) *errors.CompilerError {
	found := pe.Token.Lexeme
	if pe.Token.Type == lexer.TOKEN_EOF {
		found = "end of file"
	}

	switch pe.Type {
	case parser.ErrorMissingPackage:
		return errors.NewMissingPackage(pe.Location)
	case parser.ErrorEmptyName:
		return errors.NewEmptyValueName(pe.Location)
	case parser.ErrorMissingToken:
		return errors.NewExpectedToken(pe.Location, pe.Expected, found)
	default:
		return errors.NewUnexpectedToken(pe.Location, found, pe.Context)
	}
}

// withSource attaches the surrounding source lines to each diagnostic
func withSource(diags errors.ErrorList, source string) errors.ErrorList {
	lines := strings.Split(source, "\n")
	for _, d := range diags {
		line := d.Location.Line
		if line < 2 || line > len(lines) {
			continue
		}
		next := ""
		if line < len(lines) {
			next = lines[line]
		}
		d.WithContext(lines[line-1], []string{lines[line-2], lines[line-1], next})
	}
	return diags
}
