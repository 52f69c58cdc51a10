package lexer

import "fmt"

// TokenType represents the type of a token in an enum declaration file
type TokenType int

const (
	// TOKEN_EOF marks the end of the token stream.
	TOKEN_EOF TokenType = iota
	// TOKEN_ERROR represents a lexical error encountered during scanning.
	TOKEN_ERROR

	// TOKEN_PACKAGE marks the 'package' keyword.
	TOKEN_PACKAGE
	// TOKEN_ENUM marks the 'enum' keyword.
	TOKEN_ENUM
	// TOKEN_FLAGS marks the 'flags' modifier after an enum name.
	TOKEN_FLAGS

	TOKEN_IDENTIFIER  // red, item_one, Color
	TOKEN_DOC_COMMENT // /// text

	TOKEN_COMMA  // ,
	TOKEN_LBRACE // {
	TOKEN_RBRACE // }
)

// TokenTypeNames maps token types to their string representations
var TokenTypeNames = map[TokenType]string{
	TOKEN_EOF:         "EOF",
	TOKEN_ERROR:       "ERROR",
	TOKEN_PACKAGE:     "PACKAGE",
	TOKEN_ENUM:        "ENUM",
	TOKEN_FLAGS:       "FLAGS",
	TOKEN_IDENTIFIER:  "IDENTIFIER",
	TOKEN_DOC_COMMENT: "DOC_COMMENT",
	TOKEN_COMMA:       "COMMA",
	TOKEN_LBRACE:      "LBRACE",
	TOKEN_RBRACE:      "RBRACE",
}

// String returns the string representation of a TokenType
func (t TokenType) String() string {
	if name, ok := TokenTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", t)
}

// Token represents a single lexical token
type Token struct {
	Type    TokenType   // The type of the token
	Lexeme  string      // The raw text of the token
	Literal interface{} // Doc comment text with the marker stripped
	Line    int         // Line number (1-indexed)
	Column  int         // Column number (1-indexed)
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Literal != nil {
		return fmt.Sprintf("%s '%s' (%v) at %d:%d",
			t.Type.String(), t.Lexeme, t.Literal, t.Line, t.Column)
	}
	return fmt.Sprintf("%s '%s' at %d:%d",
		t.Type.String(), t.Lexeme, t.Line, t.Column)
}

// Keywords maps reserved words to their token types
var Keywords = map[string]TokenType{
	"package": TOKEN_PACKAGE,
	"enum":    TOKEN_ENUM,
	"flags":   TOKEN_FLAGS,
}

// LexError represents an error encountered during lexical analysis
type LexError struct {
	Message string // Error message
	Line    int    // Line number where error occurred
	Column  int    // Column number where error occurred
	Lexeme  string // The problematic text
}

// Error implements the error interface
func (e LexError) Error() string {
	return fmt.Sprintf("Lexical error at %d:%d: %s (near '%s')",
		e.Line, e.Column, e.Message, e.Lexeme)
}
