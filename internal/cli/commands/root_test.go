package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs enumgen in dir and returns what it printed
func execute(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--no-color", "-C", dir}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	assert.Equal(t, "enumgen", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	registered := map[string]bool{}
	for _, sub := range cmd.Commands() {
		registered[sub.Name()] = true
	}
	for _, expected := range []string{"version", "generate", "check", "define", "inspect", "new", "watch", "lsp", "completion"} {
		assert.True(t, registered[expected], "expected command %s to be registered", expected)
	}

	for _, flag := range []string{"dir", "verbose", "no-color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "missing --%s", flag)
	}
}

func TestVersionCommand(t *testing.T) {
	Version = "1.0.0-test"
	GitCommit = "abc123"
	defer func() { Version, GitCommit = "dev", "unknown" }()

	stdout, _, err := execute(t, t.TempDir(), "version")
	require.NoError(t, err)

	assert.Contains(t, stdout, "enumgen version: 1.0.0-test")
	assert.Contains(t, stdout, "Git commit: abc123")
	assert.Contains(t, stdout, "Go version: go")
}

func TestGenerateAliases(t *testing.T) {
	cmd := NewGenerateCommand()
	assert.ElementsMatch(t, []string{"gen", "g"}, cmd.Aliases)
}

func TestInvalidConfigIsReported(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "enumgen.yml", "output_suffix: .txt\n")

	_, stderr, err := execute(t, dir, "check")
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, stderr, "CONFIGURATION ERROR")
}

func TestCompletionCommand(t *testing.T) {
	stdout, _, err := execute(t, t.TempDir(), "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, stdout, "enumgen")

	_, _, err = execute(t, t.TempDir(), "completion", "tcsh")
	assert.Error(t, err)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
