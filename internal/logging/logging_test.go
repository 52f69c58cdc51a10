package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew_Quiet(t *testing.T) {
	logger := New(false)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNew_Verbose(t *testing.T) {
	logger := New(true)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}
