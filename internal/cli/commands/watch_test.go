package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "colors.enum", colorsEnum)

	cmd := NewRootCommand()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--no-color", "-C", dir, "watch"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- cmd.ExecuteContext(ctx)
	}()

	output := filepath.Join(dir, "colors_enum.go")
	require.Eventually(t, func() bool {
		return fileExists(output)
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}

	assert.Contains(t, stdout.String(), "Watching "+dir)
	assert.Contains(t, stdout.String(), "✓ colors.enum → colors_enum.go")
}

func TestWatchCommand_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, t.TempDir(), "watch", "extra")
	assert.Error(t, err)
}
