package outstream_test

import (
	"strings"
	"testing"

	"github.com/caser789/outstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	defer outstream.SetLevel(outstream.GetLevel())
	outstream.SetLevel(outstream.InfoLvl)

	var dst outstream.StringDestination
	s, err := outstream.New(&dst, outstream.WithBufferSize(4096))
	require.NoError(t, err)
	logger := newTestLogger(s)

	logger.Debug("hidden")
	logger.Info("hello", zap.String("test", "test"))
	logger.Error("world", zap.Int("one", 1))
	assert.Equal(t, 0, dst.Len())

	require.NoError(t, logger.Sync())
	lines := strings.Split(strings.TrimSpace(dst.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "|info|")
	assert.Contains(t, lines[0], "hello")
	assert.Contains(t, lines[0], `{"test": "test"}`)
	assert.Contains(t, lines[1], "|error|")
	assert.NotContains(t, dst.String(), "hidden")
}

func TestSetLevel(t *testing.T) {
	defer outstream.SetLevel(outstream.GetLevel())

	var dst outstream.StringDestination
	s, err := outstream.New(&dst, outstream.WithBufferMode(outstream.Unbuffered))
	require.NoError(t, err)
	logger := newTestLogger(s)

	outstream.SetLevel(outstream.ErrorLvl)
	logger.Warn("dropped")
	assert.Equal(t, 0, dst.Len())

	outstream.SetLevel(outstream.DebugLvl)
	logger.Debug("kept")
	assert.Contains(t, dst.String(), "kept")
}

func TestInitLevel(t *testing.T) {
	defer outstream.SetLevel(outstream.GetLevel())

	require.NoError(t, outstream.InitLevel(&outstream.Config{Level: "warn"}))
	assert.Equal(t, outstream.WarnLvl, outstream.GetLevel())

	assert.Error(t, outstream.InitLevel(&outstream.Config{Level: "verbose"}))
	assert.Equal(t, outstream.WarnLvl, outstream.GetLevel())

	t.Setenv("ENV", "live")
	require.NoError(t, outstream.InitLevel(nil))
	assert.Equal(t, outstream.InfoLvl, outstream.GetLevel())
}

func newTestLogger(s *outstream.Stream) *zap.Logger {
	return outstream.NewLogger(s, zap.WithCaller(false))
}
