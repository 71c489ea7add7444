package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInit(t *testing.T) {
	defer func() { Logger = zap.NewNop() }()

	require.NoError(t, Init("debug", "console"))
	assert.True(t, Logger.Core().Enabled(zap.DebugLevel))

	require.NoError(t, Init("warn", "json"))
	assert.False(t, Logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, Logger.Core().Enabled(zap.WarnLevel))
}

func TestInit_Invalid(t *testing.T) {
	defer func() { Logger = zap.NewNop() }()

	assert.Error(t, Init("loud", "console"))
	assert.Error(t, Init("info", "xml"))
}
