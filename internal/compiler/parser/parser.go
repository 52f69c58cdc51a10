package parser

import (
	"fmt"
	"strings"

	"github.com/conduit-lang/enumgen/internal/compiler/ast"
	"github.com/conduit-lang/enumgen/internal/compiler/lexer"
)

// Parser transforms a stream of tokens into an Abstract Syntax Tree (AST)
type Parser struct {
	tokens  []lexer.Token
	current int
	errors  []ParseError
}

// New creates a new parser for the given token stream
func New(tokens []lexer.Token) *Parser {
	return &Parser{
		tokens:  tokens,
		current: 0,
		errors:  make([]ParseError, 0),
	}
}

// Parse parses the token stream and returns the AST and any errors
func (p *Parser) Parse() (*ast.Program, []ParseError) {
	program := &ast.Program{
		Enums: make([]*ast.EnumNode, 0),
	}

	p.parsePackage(program)

	for !p.isAtEnd() {
		if e := p.parseEnum(); e != nil {
			program.Enums = append(program.Enums, e)
		}
	}

	return program, p.errors
}

// parsePackage parses the leading package clause
func (p *Parser) parsePackage(program *ast.Program) {
	p.skipErrors()
	if !p.check(lexer.TOKEN_PACKAGE) {
		p.errorOf(ErrorMissingPackage, p.peek(), "Expected 'package' declaration")
		return
	}

	pkgToken := p.advance()
	nameToken := p.consume(lexer.TOKEN_IDENTIFIER, "Expected package name")
	if nameToken.Type == lexer.TOKEN_ERROR {
		return
	}

	program.Package = nameToken.Lexeme
	program.PackageLoc = ast.TokenLocation(pkgToken)
}

// parseEnum parses an enum declaration
func (p *Parser) parseEnum() *ast.EnumNode {
	doc := p.parseDocumentation()

	if p.skipErrors() {
		return nil
	}

	if !p.check(lexer.TOKEN_ENUM) {
		p.unexpected(p.peek(), "declaration", "Expected 'enum' keyword")
		p.synchronize()
		return nil
	}
	enumToken := p.advance()
	if enumToken.Type == lexer.TOKEN_ERROR {
		p.synchronize()
		return nil
	}

	nameToken := p.consume(lexer.TOKEN_IDENTIFIER, "Expected enum name")
	if nameToken.Type == lexer.TOKEN_ERROR {
		p.synchronize()
		return nil
	}

	node := &ast.EnumNode{
		Name:          nameToken.Lexeme,
		Documentation: doc,
		Values:        make([]*ast.ValueNode, 0),
		Flags:         p.match(lexer.TOKEN_FLAGS),
		Loc:           ast.TokenLocation(enumToken),
		NameLoc:       ast.TokenLocation(nameToken),
	}

	if !p.match(lexer.TOKEN_LBRACE) {
		p.expected(p.peek(), "'{'", fmt.Sprintf("Expected '{' after enum name '%s'", node.Name))
		p.synchronize()
		return nil
	}

	p.parseValues(node)

	if !p.match(lexer.TOKEN_RBRACE) {
		p.expected(p.peek(), "'}'", "Expected '}' after enum values")
	}

	return node
}

// parseValues parses the separated value list of an enum body. Commas and
// whitespace both separate names; separators before the first name are
// ignored, but two commas with no name between them are an error.
func (p *Parser) parseValues(node *ast.EnumNode) {
	sawComma := false

	for !p.check(lexer.TOKEN_RBRACE) && !p.isAtEnd() {
		if p.atDeclaration() {
			// Unterminated body; leave the next declaration to the caller.
			return
		}

		doc := p.parseDocumentation()

		switch {
		case p.check(lexer.TOKEN_COMMA):
			comma := p.advance()
			if sawComma && len(node.Values) > 0 {
				p.errorOf(ErrorEmptyName, comma, "Empty value name between commas")
			}
			sawComma = true
		case p.isValueNameToken():
			tok := p.advance()
			node.Values = append(node.Values, &ast.ValueNode{
				Name:          tok.Lexeme,
				Documentation: doc,
				Loc:           ast.TokenLocation(tok),
			})
			sawComma = false
		case p.check(lexer.TOKEN_ERROR):
			// Already reported by the lexer.
			p.advance()
		case p.check(lexer.TOKEN_RBRACE), p.isAtEnd():
			// Trailing doc comment with nothing to document.
		default:
			p.unexpected(p.peek(), "enum body", fmt.Sprintf("Unexpected token in enum body: %s", p.peek().Lexeme))
			p.advance()
		}
	}
}

// parseDocumentation collects consecutive /// comments into one string
func (p *Parser) parseDocumentation() string {
	var lines []string
	for p.check(lexer.TOKEN_DOC_COMMENT) {
		tok := p.advance()
		if text, ok := tok.Literal.(string); ok {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n")
}

// isValueNameToken reports whether the current token may name a value.
// Keywords are allowed because value names are plain text at runtime.
func (p *Parser) isValueNameToken() bool {
	switch p.peek().Type {
	case lexer.TOKEN_IDENTIFIER, lexer.TOKEN_PACKAGE, lexer.TOKEN_ENUM, lexer.TOKEN_FLAGS:
		return true
	}
	return false
}

// skipErrors consumes lexer ERROR tokens and reports whether the stream ended
func (p *Parser) skipErrors() bool {
	for p.check(lexer.TOKEN_ERROR) {
		p.advance()
	}
	return p.isAtEnd()
}

// Helper methods

// peek returns the current token without consuming it
func (p *Parser) peek() lexer.Token {
	if len(p.tokens) == 0 {
		return lexer.Token{Type: lexer.TOKEN_EOF}
	}
	if p.current >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current]
}

// previous returns the most recently consumed token
func (p *Parser) previous() lexer.Token {
	if len(p.tokens) == 0 || p.current == 0 {
		return lexer.Token{Type: lexer.TOKEN_EOF}
	}
	return p.tokens[p.current-1]
}

// advance consumes the current token and returns it
func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// check returns true if the current token matches the given type
func (p *Parser) check(tokenType lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tokenType
}

// peekAt returns the token n positions ahead of the current one
func (p *Parser) peekAt(n int) lexer.Token {
	if p.current+n >= len(p.tokens) {
		return lexer.Token{Type: lexer.TOKEN_EOF}
	}
	return p.tokens[p.current+n]
}

// atDeclaration reports whether the upcoming tokens open a new enum
// declaration ("enum Name {" or "enum Name flags")
func (p *Parser) atDeclaration() bool {
	if !p.check(lexer.TOKEN_ENUM) || p.peekAt(1).Type != lexer.TOKEN_IDENTIFIER {
		return false
	}
	next := p.peekAt(2).Type
	return next == lexer.TOKEN_LBRACE || next == lexer.TOKEN_FLAGS
}

// match consumes the token if it matches any of the given types
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances if the next token matches, otherwise reports an error
func (p *Parser) consume(tokenType lexer.TokenType, message string) lexer.Token {
	if p.check(tokenType) {
		return p.advance()
	}

	p.expected(p.peek(), describe(tokenType), message)
	return lexer.Token{Type: lexer.TOKEN_ERROR}
}

// isAtEnd returns true if we've reached the end of the token stream
func (p *Parser) isAtEnd() bool {
	return p.current >= len(p.tokens) || p.tokens[p.current].Type == lexer.TOKEN_EOF
}

// errorOf records a parse error of the given type
func (p *Parser) errorOf(errType ErrorType, token lexer.Token, message string) {
	p.errors = append(p.errors, NewParseError(errType, message, token))
}

// unexpected records an unexpected-token error
func (p *Parser) unexpected(token lexer.Token, context, message string) {
	err := NewParseError(ErrorUnexpectedToken, message, token)
	err.Context = context
	p.errors = append(p.errors, err)
}

// expected records a missing-token error
func (p *Parser) expected(token lexer.Token, what, message string) {
	err := NewParseError(ErrorMissingToken, message, token)
	err.Expected = what
	p.errors = append(p.errors, err)
}

// describe returns a human description of a token type for diagnostics
func describe(tokenType lexer.TokenType) string {
	switch tokenType {
	case lexer.TOKEN_IDENTIFIER:
		return "a name"
	case lexer.TOKEN_LBRACE:
		return "'{'"
	case lexer.TOKEN_RBRACE:
		return "'}'"
	default:
		return strings.ToLower(tokenType.String())
	}
}

// synchronize implements panic mode error recovery
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		// Synchronize on declaration boundaries
		if p.check(lexer.TOKEN_ENUM) || p.check(lexer.TOKEN_DOC_COMMENT) {
			return
		}

		p.advance()
	}
}
