package codegen

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/enumgen/internal/compiler/ast"
)

func enumNode(name string, flags bool, values ...string) *ast.EnumNode {
	e := &ast.EnumNode{Name: name, Flags: flags}
	for _, v := range values {
		e.Values = append(e.Values, &ast.ValueNode{Name: v})
	}
	return e
}

func generate(t *testing.T, opts Options, enums ...*ast.EnumNode) string {
	t.Helper()

	gen := NewGenerator(opts)
	code, err := gen.GenerateFile(&ast.Program{Package: "colors", Enums: enums})
	require.NoError(t, err, string(code))

	_, err = parser.ParseFile(token.NewFileSet(), "out.go", code, parser.ParseComments)
	require.NoError(t, err, "generated code must parse:\n%s", code)

	return string(code)
}

func TestGenerateFile_Color(t *testing.T) {
	code := generate(t, Options{PrefixConstants: true, Source: "colors.enum"},
		enumNode("Color", false, "red", "green", "blue", "yellow"))

	for _, want := range []string{
		"// Code generated by enumgen. DO NOT EDIT.",
		"// Source: colors.enum",
		"package colors",
		`"github.com/conduit-lang/enumgen/pkg/enum"`,
		"type Color uint8",
		"ColorRed Color = iota",
		"ColorYellow\n",
		"const ColorCount = 4",
		"_ = x[ColorBlue-2]",
		`var colorInfo = enum.NewInfo("red", "green", "blue", "yellow")`,
		"func (Color) EnumInfo() *enum.Info { return colorInfo }",
		"func (c Color) String() string {",
		"func (c Color) Next() Color { return enum.Next(c) }",
		"func (c Color) Prev() Color { return enum.Prev(c) }",
		"func (c Color) Valid() bool { return enum.Valid(c) }",
		"func (c Color) MarshalText() ([]byte, error) {",
		"func (c *Color) UnmarshalText(text []byte) error {",
		"func ParseColor(name string) (Color, error) { return enum.Parse[Color](name) }",
	} {
		assert.Contains(t, code, want)
	}

	assert.NotContains(t, code, "ColorFlags")
	assert.True(t, strings.HasPrefix(code, Header))
}

func TestGenerateFile_Flags(t *testing.T) {
	code := generate(t, Options{PrefixConstants: true},
		enumNode("Color", true, "red", "green", "blue", "yellow"))

	for _, want := range []string{
		"type ColorFlags = enum.Flags[Color, uint8]",
		"const _ = uint8(1 << (ColorCount - 1))",
		"func (c Color) Flags() ColorFlags { return enum.FlagsOf[Color, uint8](c) }",
		"func (c Color) Or(other Color) ColorFlags { return enum.Or[uint8](c, other) }",
		"func (c Color) And(other Color) ColorFlags { return enum.And[uint8](c, other) }",
		"func (c Color) Xor(other Color) ColorFlags { return enum.Xor[uint8](c, other) }",
		"func (c Color) Not() ColorFlags { return enum.Not[uint8](c) }",
	} {
		assert.Contains(t, code, want)
	}
}

func TestFlagsWidth(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "uint8"}, {8, "uint8"},
		{9, "uint16"}, {16, "uint16"},
		{17, "uint32"}, {32, "uint32"},
		{33, "uint64"}, {64, "uint64"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FlagsWidth(tt.n), "n=%d", tt.n)
	}
}

func TestGenerateFile_WideFlags(t *testing.T) {
	values := make([]string, 9)
	for i := range values {
		values[i] = string(rune('a' + i))
	}
	code := generate(t, Options{PrefixConstants: true}, enumNode("Piece", true, values...))

	assert.Contains(t, code, "type PieceFlags = enum.Flags[Piece, uint16]")
	assert.Contains(t, code, "const _ = uint16(1 << (PieceCount - 1))")
}

func TestGenerateFile_Unprefixed(t *testing.T) {
	code := generate(t, Options{PrefixConstants: false},
		enumNode("Color", false, "red", "dark_blue"))

	assert.Contains(t, code, "Red Color = iota")
	assert.Contains(t, code, "DarkBlue\n")
	assert.Contains(t, code, `enum.NewInfo("red", "dark_blue")`)
}

func TestGenerateFile_Documentation(t *testing.T) {
	e := enumNode("Color", false, "red", "green")
	e.Documentation = "Color is a primary-ish color.\nIt has two values."
	e.Values[1].Documentation = "Green is the default."

	code := generate(t, Options{PrefixConstants: true}, e)

	assert.Contains(t, code, "// Color is a primary-ish color.\n// It has two values.\ntype Color uint8")
	assert.Contains(t, code, "// Green is the default.\n\tColorGreen")

	code = generate(t, Options{PrefixConstants: true}, enumNode("Suit", false, "hearts"))
	assert.Contains(t, code, "// Suit is an enumeration of 1 values.")
}

func TestGenerateFile_Duplicates(t *testing.T) {
	code := generate(t, Options{PrefixConstants: true},
		enumNode("Color", false, "red", "green", "red"))

	assert.Contains(t, code, "ColorRed_2")
	assert.Contains(t, code, `enum.NewInfo("red", "green", "red")`)
}

func TestGenerateFile_MultipleEnums(t *testing.T) {
	code := generate(t, Options{PrefixConstants: true},
		enumNode("Color", false, "red"),
		enumNode("Slot", true, "head", "chest"))

	assert.Contains(t, code, "type Color uint8")
	assert.Contains(t, code, "type SlotFlags = enum.Flags[Slot, uint8]")
	assert.Equal(t, 1, strings.Count(code, "import ("))
}

func TestGenerateFile_CustomRuntimeImport(t *testing.T) {
	code := generate(t, Options{RuntimeImport: "example.com/vendor/enumrt", PrefixConstants: true},
		enumNode("Color", false, "red"))

	assert.Contains(t, code, `enum "example.com/vendor/enumrt"`)
	assert.Contains(t, code, "enum.NewInfo(")
}

func TestGenerateFile_Receivers(t *testing.T) {
	code := generate(t, Options{PrefixConstants: true}, enumNode("v", false, "one"))
	assert.Contains(t, code, "func (vv v) String() string {")
}

func TestGenerateFile_Errors(t *testing.T) {
	gen := NewGenerator(Options{})

	_, err := gen.GenerateFile(&ast.Program{Enums: []*ast.EnumNode{enumNode("Color", false, "red")}})
	assert.Error(t, err)

	_, err = gen.GenerateFile(&ast.Program{Package: "colors"})
	assert.Error(t, err)
}

func TestGenerateFile_Reusable(t *testing.T) {
	gen := NewGenerator(Options{PrefixConstants: true})

	first, err := gen.GenerateFile(&ast.Program{Package: "a", Enums: []*ast.EnumNode{enumNode("Color", false, "red")}})
	require.NoError(t, err)
	second, err := gen.GenerateFile(&ast.Program{Package: "a", Enums: []*ast.EnumNode{enumNode("Color", false, "red")}})
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}
