package commands

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/enumgen/internal/compiler/codegen"
)

func TestDefineCommand(t *testing.T) {
	t.Setenv("GOPACKAGE", "palette")
	dir := t.TempDir()

	stdout, _, err := execute(t, dir, "define", "Color", "red,", "green", "blue")
	require.NoError(t, err)
	assert.Contains(t, stdout, "✓ Color → color_enum.go")

	code := readFile(t, filepath.Join(dir, "color_enum.go"))
	assert.True(t, strings.HasPrefix(code, codegen.Header))
	assert.Contains(t, code, "// Source: enumgen define Color")
	assert.Contains(t, code, "package palette")
	assert.Contains(t, code, "ColorBlue")

	stdout, _, err = execute(t, dir, "define", "Color", "red", "green", "blue")
	require.NoError(t, err)
	assert.Empty(t, stdout, "unchanged output is not rewritten")
}

func TestDefineCommand_Options(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, dir, "define", "Permission", "read write execute",
		"--package", "acl", "--flags", "--doc", "Permission is\nan access right.", "-o", "perm_gen.go")
	require.NoError(t, err)

	code := readFile(t, filepath.Join(dir, "perm_gen.go"))
	assert.Contains(t, code, "package acl")
	assert.Contains(t, code, "PermissionFlags")
	assert.Contains(t, code, "// Permission is an access right.")
}

func TestDefineCommand_Stdout(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := execute(t, dir, "define", "Size", "small", "large", "-p", "sizes", "-o", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, codegen.Header))
	assert.Contains(t, stdout, "SizeLarge")
	assert.NoFileExists(t, filepath.Join(dir, "size_enum.go"))
}

func TestDefineCommand_Errors(t *testing.T) {
	t.Setenv("GOPACKAGE", "")

	tests := []struct {
		name   string
		args   []string
		errMsg string
		stderr string
	}{
		{
			name:   "no package",
			args:   []string{"define", "Color", "red"},
			errMsg: "package name required",
		},
		{
			name:   "empty name between commas",
			args:   []string{"define", "Color", "red,,blue", "-p", "colors"},
			errMsg: "invalid value list",
		},
		{
			name:   "duplicate value",
			args:   []string{"define", "Color", "red", "red", "-p", "colors"},
			stderr: "[SEM203]",
		},
		{
			name:   "missing values",
			args:   []string{"define", "Color"},
			errMsg: "requires at least 2 arg(s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := execute(t, t.TempDir(), tt.args...)
			require.Error(t, err)
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
			if tt.stderr != "" {
				assert.ErrorIs(t, err, errReported)
				assert.Contains(t, stderr, tt.stderr)
			}
		})
	}
}

func TestSplitValues(t *testing.T) {
	names, err := splitValues(" red, green\tblue, ")
	require.NoError(t, err)
	assert.Equal(t, []string{"red", "green", "blue"}, names)

	_, err = splitValues("  ")
	assert.EqualError(t, err, "at least one value name is required")
}

func TestDeclarationRender(t *testing.T) {
	source, err := declaration{
		Package: "colors",
		Name:    "Color",
		Doc:     "Color is\n  a colour.",
		Flags:   true,
		Values:  []string{"red", "green"},
		Output:  "color_enum.go",
	}.render()
	require.NoError(t, err)

	expected := "# Compiled to color_enum.go by `enumgen generate`.\n\n" +
		"package colors\n\n" +
		"/// Color is a colour.\n" +
		"enum Color flags {\n" +
		"    red\n" +
		"    green\n" +
		"}\n"
	assert.Equal(t, expected, source)
}

func TestPackageNameFor(t *testing.T) {
	assert.Equal(t, "model", packageNameFor(filepath.Join(t.TempDir(), "Model")))
	assert.Equal(t, "myenums", packageNameFor(filepath.Join(t.TempDir(), "my-enums")))
	assert.Equal(t, "enums", packageNameFor(filepath.Join(t.TempDir(), "123")))
	assert.Equal(t, "enums", packageNameFor(filepath.Join(t.TempDir(), "func")))
}
