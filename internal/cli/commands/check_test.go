package commands

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "colors.enum", colorsEnum)

	stdout, _, err := execute(t, dir, "check")
	require.NoError(t, err)
	assert.Contains(t, stdout, "✓ 1 file OK")
	assert.NoFileExists(t, filepath.Join(dir, "colors_enum.go"))
}

func TestCheckCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "colors.enum", "package colors\n\nenum Color { red, green, red }\n")

	stdout, _, err := execute(t, dir, "check")
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, stdout, "SEM203")
}

func TestCheckCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "colors.enum", "package colors\n\nenum Color { red, green, red }\n")

	stdout, _, err := execute(t, dir, "check", "--format", "json")
	require.ErrorIs(t, err, errReported)

	var diags []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &diags))
	require.Len(t, diags, 1)
	assert.Equal(t, "SEM203", diags[0]["code"])
	assert.Equal(t, "error", diags[0]["severity"])
}

func TestCheckCommand_JSONClean(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "colors.enum", colorsEnum)

	stdout, _, err := execute(t, dir, "check", "-f", "json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", stdout)
}

func TestCheckCommand_UnknownFormat(t *testing.T) {
	_, _, err := execute(t, t.TempDir(), "check", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "xml"`)
}
