package errors

import (
	"fmt"

	"github.com/conduit-lang/enumgen/internal/compiler/ast"
)

// Code generation error codes (GEN600-699)
const (
	// ErrCodeGenFailed indicates a general code generation failure
	ErrCodeGenFailed ErrorCode = "GEN600"
	// ErrInvalidGoIdentifier indicates a name that can't be converted to valid Go
	ErrInvalidGoIdentifier ErrorCode = "GEN601"
	// ErrGoReservedWord indicates use of Go reserved word
	ErrGoReservedWord ErrorCode = "GEN608"
)

// NewCodeGenFailed creates a GEN600 error
func NewCodeGenFailed(loc ast.SourceLocation, reason string) *CompilerError {
	return newError(
		ErrCodeGenFailed,
		"codegen_failed",
		CategoryCodeGen,
		SeverityError,
		fmt.Sprintf("Code generation failed: %s", reason),
		loc,
	).WithSuggestion("This is likely a generator bug - please report it")
}

// NewInvalidGoIdentifier creates a GEN601 error
func NewInvalidGoIdentifier(loc ast.SourceLocation, name, reason string) *CompilerError {
	return newError(
		ErrInvalidGoIdentifier,
		"invalid_go_identifier",
		CategoryCodeGen,
		SeverityError,
		fmt.Sprintf("Name '%s' cannot be converted to valid Go identifier: %s", name, reason),
		loc,
	).WithSuggestion("Use alphanumeric characters and underscores only")
}

// NewGoReservedWord creates a GEN608 error
func NewGoReservedWord(loc ast.SourceLocation, word string) *CompilerError {
	return newError(
		ErrGoReservedWord,
		"go_reserved_word",
		CategoryCodeGen,
		SeverityError,
		fmt.Sprintf("'%s' is a Go reserved word and cannot be used as an identifier", word),
		loc,
	).WithSuggestion("Choose a different name")
}
