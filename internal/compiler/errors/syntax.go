package errors

import (
	"fmt"

	"github.com/conduit-lang/enumgen/internal/compiler/ast"
)

// Syntax error codes (SYN001-099)
const (
	// ErrUnexpectedToken indicates an unexpected token was encountered
	ErrUnexpectedToken ErrorCode = "SYN001"
	// ErrExpectedToken indicates a specific token was expected but not found
	ErrExpectedToken ErrorCode = "SYN002"
	// ErrInvalidCharacter indicates a character that cannot start any token
	ErrInvalidCharacter ErrorCode = "SYN003"
	// ErrEmptyValueName indicates two commas with no name between them
	ErrEmptyValueName ErrorCode = "SYN004"
	// ErrMissingPackage indicates the file does not start with a package clause
	ErrMissingPackage ErrorCode = "SYN005"
	// ErrTooManyNames indicates a raw name list longer than an enum can hold
	ErrTooManyNames ErrorCode = "SYN006"
)

// NewUnexpectedToken creates a SYN001 error
func NewUnexpectedToken(loc ast.SourceLocation, found, context string) *CompilerError {
	message := fmt.Sprintf("Unexpected token '%s'", found)
	if context != "" {
		message = fmt.Sprintf("Unexpected token '%s' in %s", found, context)
	}

	return newError(
		ErrUnexpectedToken,
		"unexpected_token",
		CategorySyntax,
		SeverityError,
		message,
		loc,
	)
}

// NewExpectedToken creates a SYN002 error
func NewExpectedToken(loc ast.SourceLocation, expected, found string) *CompilerError {
	return newError(
		ErrExpectedToken,
		"expected_token",
		CategorySyntax,
		SeverityError,
		fmt.Sprintf("Expected %s but found '%s'", expected, found),
		loc,
	).WithExpected(expected).WithActual(found)
}

// NewInvalidCharacter creates a SYN003 error
func NewInvalidCharacter(loc ast.SourceLocation, near string) *CompilerError {
	return newError(
		ErrInvalidCharacter,
		"invalid_character",
		CategorySyntax,
		SeverityError,
		fmt.Sprintf("Invalid character near '%s'", near),
		loc,
	).WithSuggestion("Value names may contain letters, digits and underscores; separate them with commas or whitespace")
}

// NewEmptyValueName creates a SYN004 error
func NewEmptyValueName(loc ast.SourceLocation) *CompilerError {
	return newError(
		ErrEmptyValueName,
		"empty_value_name",
		CategorySyntax,
		SeverityError,
		"Empty value name between commas",
		loc,
	).WithSuggestion("Remove the extra comma").
		WithExamples("enum Color { red, green }")
}

// NewMissingPackage creates a SYN005 error
func NewMissingPackage(loc ast.SourceLocation) *CompilerError {
	return newError(
		ErrMissingPackage,
		"missing_package",
		CategorySyntax,
		SeverityError,
		"Declaration file must start with a package clause",
		loc,
	).WithSuggestion("Name the Go package the generated code belongs to").
		WithExamples("package colors")
}

// NewTooManyNames creates a SYN006 error
func NewTooManyNames(loc ast.SourceLocation, limit int) *CompilerError {
	return newError(
		ErrTooManyNames,
		"too_many_names",
		CategorySyntax,
		SeverityError,
		fmt.Sprintf("Too many names: an enumeration holds at most %d", limit),
		loc,
	).WithSuggestion("Split the values across several enumerations")
}
