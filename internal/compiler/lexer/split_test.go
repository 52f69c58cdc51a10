package lexer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitNames(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"commas", "red, green, blue, yellow", []string{"red", "green", "blue", "yellow"}},
		{"no spaces", "red,green,blue", []string{"red", "green", "blue"}},
		{"whitespace only", "red green\tblue\nyellow", []string{"red", "green", "blue", "yellow"}},
		{"mixed", "  head chest,\n legs , feet", []string{"head", "chest", "legs", "feet"}},
		{"leading separators", " , \n red", []string{"red"}},
		{"trailing comma", "red, green,", []string{"red", "green"}},
		{"single", "only", []string{"only"}},
		{"empty", "", nil},
		{"blank", "  \n\t ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := SplitNames(tt.input)
			assert.Empty(t, errs)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitNames_EmptyName(t *testing.T) {
	for _, input := range []string{"red,,green", "red, , green", "red,,"} {
		t.Run(input, func(t *testing.T) {
			_, errs := SplitNames(input)
			require.Len(t, errs, 1)
			assert.Contains(t, errs[0].Message, "empty name")
		})
	}
}

func TestSplitNames_ErrorPosition(t *testing.T) {
	_, errs := SplitNames("red,\ngreen,,blue")
	require.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].Line)
	assert.Equal(t, 7, errs[0].Column)
}

func TestSplitNames_Limit(t *testing.T) {
	names := make([]string, MaxNames)
	for i := range names {
		names[i] = fmt.Sprintf("v%d", i)
	}

	got, errs := SplitNames(strings.Join(names, ","))
	assert.Empty(t, errs)
	assert.Len(t, got, MaxNames)

	got, errs = SplitNames(strings.Join(names, ",") + ",extra")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "too many names")
	assert.Equal(t, "extra", errs[0].Lexeme)
	assert.Len(t, got, MaxNames)
}
