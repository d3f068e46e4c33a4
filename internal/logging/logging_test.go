package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewFiltersByLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, _, err := New("warn", &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", zap.String("method", "getplayer"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "getplayer")
	assert.Contains(t, out, "WARN")
}

func TestNewDefaultsToWarn(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, _, err := New("", &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	assert.Empty(t, buf.String())
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, _, err := New("chatty", nil)
	require.ErrorContains(t, err, "parse log level")
}

func TestNewLevelCanBeRaised(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, level, err := New("warn", &buf)
	require.NoError(t, err)

	logger.Debug("before")
	level.SetLevel(zap.DebugLevel)
	logger.Debug("after")

	out := buf.String()
	assert.NotContains(t, out, "before")
	assert.Contains(t, out, "after")
}
