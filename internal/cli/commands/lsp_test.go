package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLSPCommand(t *testing.T) {
	cmd := NewLSPCommand()
	assert.Equal(t, "lsp", cmd.Use)
	assert.Contains(t, cmd.Long, "stdin/stdout")

	_, _, err := execute(t, t.TempDir(), "lsp", "extra")
	assert.Error(t, err)
}
