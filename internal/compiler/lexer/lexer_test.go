package lexer

import (
	"strings"
	"testing"
)

// Helper function to create a lexer and scan tokens
func scanSource(source string) ([]Token, []LexError) {
	lexer := New(source)
	return lexer.ScanTokens()
}

// Helper to check if tokens match expected types
func checkTokenTypes(t *testing.T, tokens []Token, expected []TokenType) {
	t.Helper()

	actual := tokens
	if len(actual) > 0 && actual[len(actual)-1].Type == TOKEN_EOF {
		actual = actual[:len(actual)-1]
	}

	if len(actual) != len(expected) {
		t.Errorf("Expected %d tokens, got %d", len(expected), len(actual))
		t.Logf("Expected: %v", expected)
		t.Logf("Got: %v", tokensToTypes(actual))
		return
	}

	for i, token := range actual {
		if token.Type != expected[i] {
			t.Errorf("Token %d: expected %s, got %s", i, expected[i], token.Type)
		}
	}
}

func tokensToTypes(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, t := range tokens {
		types[i] = t.Type
	}
	return types
}

func TestLexer_Declaration(t *testing.T) {
	source := `package colors

enum Color { red, green, blue, yellow }`
	tokens, errors := scanSource(source)

	if len(errors) > 0 {
		t.Errorf("Unexpected errors: %v", errors)
	}

	expected := []TokenType{
		TOKEN_PACKAGE, TOKEN_IDENTIFIER,
		TOKEN_ENUM, TOKEN_IDENTIFIER, TOKEN_LBRACE,
		TOKEN_IDENTIFIER, TOKEN_COMMA,
		TOKEN_IDENTIFIER, TOKEN_COMMA,
		TOKEN_IDENTIFIER, TOKEN_COMMA,
		TOKEN_IDENTIFIER,
		TOKEN_RBRACE,
	}
	checkTokenTypes(t, tokens, expected)
}

func TestLexer_FlagsModifier(t *testing.T) {
	tokens, errors := scanSource("enum Slot flags {\n  head chest\n  legs\n}")

	if len(errors) > 0 {
		t.Errorf("Unexpected errors: %v", errors)
	}

	checkTokenTypes(t, tokens, []TokenType{
		TOKEN_ENUM, TOKEN_IDENTIFIER, TOKEN_FLAGS, TOKEN_LBRACE,
		TOKEN_IDENTIFIER, TOKEN_IDENTIFIER, TOKEN_IDENTIFIER,
		TOKEN_RBRACE,
	})
}

func TestLexer_Comments(t *testing.T) {
	source := `// plain comment
# hash comment
//// not a doc comment
/// Color is a color.
enum Color { red }`
	tokens, errors := scanSource(source)

	if len(errors) > 0 {
		t.Errorf("Unexpected errors: %v", errors)
	}

	checkTokenTypes(t, tokens, []TokenType{
		TOKEN_DOC_COMMENT,
		TOKEN_ENUM, TOKEN_IDENTIFIER, TOKEN_LBRACE, TOKEN_IDENTIFIER, TOKEN_RBRACE,
	})

	if tokens[0].Literal != "Color is a color." {
		t.Errorf("Expected doc text 'Color is a color.', got %v", tokens[0].Literal)
	}
}

func TestLexer_Positions(t *testing.T) {
	tokens, _ := scanSource("enum Color {\n  red,\n  green\n}")

	tests := []struct {
		index  int
		lexeme string
		line   int
		column int
	}{
		{0, "enum", 1, 1},
		{1, "Color", 1, 6},
		{3, "red", 2, 3},
		{5, "green", 3, 3},
		{6, "}", 4, 1},
	}

	for _, tt := range tests {
		tok := tokens[tt.index]
		if tok.Lexeme != tt.lexeme {
			t.Errorf("Token %d: expected lexeme %q, got %q", tt.index, tt.lexeme, tok.Lexeme)
		}
		if tok.Line != tt.line || tok.Column != tt.column {
			t.Errorf("Token %q: expected %d:%d, got %d:%d",
				tt.lexeme, tt.line, tt.column, tok.Line, tok.Column)
		}
	}
}

func TestLexer_KeywordsAndIdentifiers(t *testing.T) {
	tokens, _ := scanSource("package enum flags item_1 _hidden 2nd")

	checkTokenTypes(t, tokens, []TokenType{
		TOKEN_PACKAGE, TOKEN_ENUM, TOKEN_FLAGS,
		TOKEN_IDENTIFIER, TOKEN_IDENTIFIER, TOKEN_IDENTIFIER,
	})
}

func TestLexer_UnexpectedCharacter(t *testing.T) {
	tokens, errors := scanSource("enum Color { red; green }")

	if len(errors) != 1 {
		t.Fatalf("Expected 1 error, got %d", len(errors))
	}
	if errors[0].Column != 17 {
		t.Errorf("Expected error at column 17, got %d", errors[0].Column)
	}
	if !strings.Contains(errors[0].Error(), "unexpected character") {
		t.Errorf("Unexpected error message: %s", errors[0].Error())
	}

	found := false
	for _, tok := range tokens {
		if tok.Type == TOKEN_ERROR {
			found = true
		}
	}
	if !found {
		t.Error("Expected an ERROR token")
	}
}

func TestLexer_SingleSlash(t *testing.T) {
	_, errors := scanSource("enum / Color")
	if len(errors) != 1 {
		t.Errorf("Expected 1 error for a lone slash, got %d", len(errors))
	}
}

func TestLexer_EmptySource(t *testing.T) {
	tokens, errors := scanSource("")

	if len(errors) != 0 {
		t.Errorf("Unexpected errors: %v", errors)
	}
	if len(tokens) != 1 || tokens[0].Type != TOKEN_EOF {
		t.Errorf("Expected only EOF, got %v", tokens)
	}
}

func TestTokenType_String(t *testing.T) {
	if TOKEN_ENUM.String() != "ENUM" {
		t.Errorf("Expected ENUM, got %s", TOKEN_ENUM.String())
	}
	if TokenType(999).String() != "UNKNOWN(999)" {
		t.Errorf("Expected UNKNOWN(999), got %s", TokenType(999).String())
	}
}

func TestIsValidIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"red", true},
		{"_x", true},
		{"Item2", true},
		{"2nd", false},
		{"", false},
		{"a-b", false},
	}

	for _, tt := range tests {
		if got := IsValidIdentifier(tt.input); got != tt.want {
			t.Errorf("IsValidIdentifier(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
