package errors

import (
	"fmt"

	"github.com/conduit-lang/enumgen/internal/compiler/ast"
)

// Semantic error codes (SEM200-299)
const (
	// ErrEmptyEnum indicates an enum declared without values
	ErrEmptyEnum ErrorCode = "SEM201"
	// ErrTooManyValues indicates an enum with more values than a flags word can hold
	ErrTooManyValues ErrorCode = "SEM202"
	// ErrDuplicateValue indicates a value name declared twice in one enum
	ErrDuplicateValue ErrorCode = "SEM203"
	// ErrDuplicateEnum indicates an enum name declared twice in one package
	ErrDuplicateEnum ErrorCode = "SEM204"
	// ErrConstantCollision indicates two values of one enum map to the same Go constant
	ErrConstantCollision ErrorCode = "SEM205"
	// ErrIdentifierCollision indicates generated identifiers of two enums collide
	ErrIdentifierCollision ErrorCode = "SEM206"
)

// NewEmptyEnum creates a SEM201 error
func NewEmptyEnum(loc ast.SourceLocation, enumName string) *CompilerError {
	return newError(
		ErrEmptyEnum,
		"empty_enum",
		CategorySemantic,
		SeverityError,
		fmt.Sprintf("Enum '%s' declares no values", enumName),
		loc,
	).WithSuggestion("An enumeration needs at least one value").
		WithExamples(fmt.Sprintf("enum %s { first, second }", enumName)).
		WithEnum(enumName)
}

// NewTooManyValues creates a SEM202 error
func NewTooManyValues(loc ast.SourceLocation, enumName string, count, limit int) *CompilerError {
	return newError(
		ErrTooManyValues,
		"too_many_values",
		CategorySemantic,
		SeverityError,
		fmt.Sprintf("Enum '%s' declares %d values, at most %d are allowed", enumName, count, limit),
		loc,
	).WithExpected(fmt.Sprintf("at most %d values", limit)).
		WithActual(fmt.Sprintf("%d values", count)).
		WithSuggestion("Split the values across several enumerations").
		WithEnum(enumName)
}

// NewDuplicateValue creates a SEM203 error
func NewDuplicateValue(loc ast.SourceLocation, enumName, value string, first ast.SourceLocation) *CompilerError {
	return newError(
		ErrDuplicateValue,
		"duplicate_value",
		CategorySemantic,
		SeverityError,
		fmt.Sprintf("Value '%s' is declared more than once in enum '%s' (first at line %d)",
			value, enumName, first.Line),
		loc,
	).WithSuggestion("Remove the duplicate, or set allow_duplicates to keep it; lookups by name then return the first occurrence").
		WithEnum(enumName).
		WithValue(value)
}

// NewDuplicateEnum creates a SEM204 error
func NewDuplicateEnum(loc ast.SourceLocation, enumName string, first ast.SourceLocation) *CompilerError {
	return newError(
		ErrDuplicateEnum,
		"duplicate_enum",
		CategorySemantic,
		SeverityError,
		fmt.Sprintf("Enum '%s' is already declared at line %d", enumName, first.Line),
		loc,
	).WithSuggestion("Rename one of the enumerations").
		WithEnum(enumName)
}

// NewConstantCollision creates a SEM205 error
// owner describes what already holds the identifier, e.g. "value 'red'".
func NewConstantCollision(loc ast.SourceLocation, enumName, value, owner, constant string) *CompilerError {
	return newError(
		ErrConstantCollision,
		"constant_collision",
		CategorySemantic,
		SeverityError,
		fmt.Sprintf("Value '%s' of enum '%s' generates %s, which is already used by %s",
			value, enumName, constant, owner),
		loc,
	).WithSuggestion("Rename one of the values so their Go names differ").
		WithEnum(enumName).
		WithValue(value)
}

// NewIdentifierCollision creates a SEM206 error
func NewIdentifierCollision(loc ast.SourceLocation, identifier, enumName, otherEnum string) *CompilerError {
	return newError(
		ErrIdentifierCollision,
		"identifier_collision",
		CategorySemantic,
		SeverityError,
		fmt.Sprintf("Generated identifier %s of enum '%s' collides with enum '%s'",
			identifier, enumName, otherEnum),
		loc,
	).WithSuggestion("Rename one of the enumerations, or enable prefix_constants").
		WithEnum(enumName)
}

// ErrPackageMismatch indicates declaration files in one directory naming different packages
const ErrPackageMismatch ErrorCode = "SEM207"

// NewPackageMismatch creates a SEM207 error
func NewPackageMismatch(loc ast.SourceLocation, pkg, otherPkg, otherFile string) *CompilerError {
	return newError(
		ErrPackageMismatch,
		"package_mismatch",
		CategorySemantic,
		SeverityError,
		fmt.Sprintf("Package '%s' differs from package '%s' declared in %s", pkg, otherPkg, otherFile),
		loc,
	).WithSuggestion("Declaration files in one directory generate into the same Go package")
}

// ErrImportCollision indicates a generated identifier shadowing a package the
// generated file imports
const ErrImportCollision ErrorCode = "SEM208"

// NewImportCollision creates a SEM208 error
func NewImportCollision(loc ast.SourceLocation, identifier, enumName string) *CompilerError {
	return newError(
		ErrImportCollision,
		"import_collision",
		CategorySemantic,
		SeverityError,
		fmt.Sprintf("Generated identifier %s of enum '%s' collides with the imported package %s",
			identifier, enumName, identifier),
		loc,
	).WithSuggestion("Rename the enum or value; generated files import " + identifier).
		WithEnum(enumName)
}
