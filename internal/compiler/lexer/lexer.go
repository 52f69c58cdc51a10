// Package lexer provides lexical analysis for enum declaration files.
// It tokenizes .enum files into a stream of tokens for the parser, and
// splits raw name lists for callers that bypass the parser.
package lexer

import (
	"strings"
	"unicode"
)

// Lexer tokenizes enum declaration source.
//
// Thread Safety: Lexer instances are NOT thread-safe. Each goroutine must
// create its own Lexer instance via New().
type Lexer struct {
	source  string     // Source code to tokenize
	start   int        // Start position of current token
	current int        // Current position in source
	line    int        // Current line number (1-indexed)
	column  int        // Current column number (1-indexed)
	tokens  []Token    // Collected tokens
	errors  []LexError // Collected errors
}

// New creates a new Lexer for the given source code
func New(source string) *Lexer {
	return &Lexer{
		source: source,
		line:   1,
		column: 1,
		tokens: make([]Token, 0),
		errors: make([]LexError, 0),
	}
}

// ScanTokens tokenizes the entire source and returns tokens and errors
func (l *Lexer) ScanTokens() ([]Token, []LexError) {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}

	l.tokens = append(l.tokens, Token{
		Type:   TOKEN_EOF,
		Lexeme: "",
		Line:   l.line,
		Column: l.column,
	})

	return l.tokens, l.errors
}

// scanToken processes the next token.
func (l *Lexer) scanToken() {
	c := l.advance()

	switch {
	case c == '{':
		l.addToken(TOKEN_LBRACE)
	case c == '}':
		l.addToken(TOKEN_RBRACE)
	case c == ',':
		l.addToken(TOKEN_COMMA)
	case c == '/':
		l.scanSlashToken()
	case c == '#':
		l.skipLine()
	case c == ' ' || c == '\r' || c == '\t':
		// Ignore whitespace
	case c == '\n':
		l.line++
		l.column = 1
	case isAlphaNumeric(c):
		l.identifier()
	default:
		l.addError("unexpected character")
		l.addToken(TOKEN_ERROR)
	}
}

// scanSlashToken handles // comments and /// doc comments
func (l *Lexer) scanSlashToken() {
	if !l.match('/') {
		l.addError("unexpected character")
		l.addToken(TOKEN_ERROR)
		return
	}

	// "///" starts a doc comment, "////" and longer are plain comments
	if l.peek() == '/' && l.peekNext() != '/' {
		l.advance()
		l.skipLine()
		text := strings.TrimSpace(l.source[l.start+3 : l.current])
		l.addTokenWithLiteral(TOKEN_DOC_COMMENT, text)
		return
	}

	l.skipLine()
}

// skipLine consumes characters up to, but not including, the next newline
func (l *Lexer) skipLine() {
	for l.peek() != '\n' && !l.isAtEnd() {
		l.advance()
	}
}

// identifier scans a name or keyword
func (l *Lexer) identifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	text := l.source[l.start:l.current]
	if tokenType, ok := Keywords[text]; ok {
		l.addToken(tokenType)
		return
	}
	l.addToken(TOKEN_IDENTIFIER)
}

// isAtEnd checks if we've reached the end of the source
func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

// advance consumes and returns the current character
func (l *Lexer) advance() byte {
	c := l.source[l.current]
	l.current++
	l.column++
	return c
}

// match consumes the current character if it matches expected
func (l *Lexer) match(expected byte) bool {
	if l.isAtEnd() || l.source[l.current] != expected {
		return false
	}
	l.current++
	l.column++
	return true
}

// peek returns the current character without consuming
func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

// peekNext returns the next character without consuming
func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

// addToken adds a token with the current lexeme
func (l *Lexer) addToken(tokenType TokenType) {
	l.addTokenWithLiteral(tokenType, nil)
}

// addTokenWithLiteral adds a token with a literal value
func (l *Lexer) addTokenWithLiteral(tokenType TokenType, literal interface{}) {
	lexeme := l.source[l.start:l.current]
	l.tokens = append(l.tokens, Token{
		Type:    tokenType,
		Lexeme:  lexeme,
		Literal: literal,
		Line:    l.line,
		Column:  l.column - (l.current - l.start),
	})
}

// addError records a lexical error
func (l *Lexer) addError(message string) {
	lexeme := ""
	if l.start < len(l.source) {
		end := l.current
		if end > l.start+20 {
			end = l.start + 20
		}
		lexeme = l.source[l.start:end]
	}

	l.errors = append(l.errors, LexError{
		Message: message,
		Line:    l.line,
		Column:  l.column - (l.current - l.start),
		Lexeme:  lexeme,
	})
}

// isAlpha checks if a character is alphabetic or underscore
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		c == '_'
}

// isAlphaNumeric checks if a character is alphanumeric or underscore
func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9')
}

// IsKeyword checks if a string is a reserved word of the declaration language
func IsKeyword(s string) bool {
	_, ok := Keywords[s]
	return ok
}

// IsValidIdentifier checks if a string is a valid Go-style identifier
func IsValidIdentifier(s string) bool {
	if s == "" {
		return false
	}

	first := rune(s[0])
	if !unicode.IsLetter(first) && first != '_' {
		return false
	}

	for _, r := range s[1:] {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
