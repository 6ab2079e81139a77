package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoggerIsNopBeforeInitialize(t *testing.T) {
	// The package-level logger must be usable before Initialize
	require.NotNil(t, Logger)
	Logger.Debugw("safe before init", "key", "value")
}

func TestInitializeConsole(t *testing.T) {
	err := Initialize(false)
	require.NoError(t, err)
	assert.False(t, JSONOutput)
	require.NotNil(t, Logger)
}

func TestInitializeJSON(t *testing.T) {
	err := Initialize(true)
	require.NoError(t, err)
	assert.True(t, JSONOutput)
}

func TestLevelForVerbosity(t *testing.T) {
	assert.Equal(t, zap.InfoLevel, LevelForVerbosity(0))
	assert.Equal(t, zap.DebugLevel, LevelForVerbosity(1))
	assert.Equal(t, zap.DebugLevel, LevelForVerbosity(3))
}
