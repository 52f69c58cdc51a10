// Package parser transforms enum declaration token streams into Abstract
// Syntax Trees. It uses recursive descent parsing with panic mode error
// recovery so that one malformed declaration does not hide the next.
package parser

import (
	"fmt"

	"github.com/conduit-lang/enumgen/internal/compiler/ast"
	"github.com/conduit-lang/enumgen/internal/compiler/lexer"
)

// ErrorType represents different categories of parse errors
type ErrorType int

const (
	// ErrorSyntax represents a general syntax error
	ErrorSyntax ErrorType = iota
	// ErrorUnexpectedToken represents an unexpected token error
	ErrorUnexpectedToken
	// ErrorMissingToken represents a missing expected token error
	ErrorMissingToken
	// ErrorEmptyName represents two commas with no value name between them
	ErrorEmptyName
	// ErrorMissingPackage represents a file without a package clause
	ErrorMissingPackage
)

// ParseError represents an error encountered during parsing
type ParseError struct {
	Type     ErrorType
	Message  string
	Location ast.SourceLocation
	Token    lexer.Token
	Expected string // what was expected, for ErrorMissingToken
	Context  string // where the error occurred, e.g. "enum body"
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("Parse error at %d:%d: %s (near '%s')",
		e.Location.Line, e.Location.Column, e.Message, e.Token.Lexeme)
}

// NewParseError creates a new parse error
func NewParseError(errType ErrorType, message string, token lexer.Token) ParseError {
	return ParseError{
		Type:    errType,
		Message: message,
		Location: ast.SourceLocation{
			Line:   token.Line,
			Column: token.Column,
		},
		Token: token,
	}
}
