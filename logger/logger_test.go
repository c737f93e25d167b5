package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/simple2d/core"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"", zap.InfoLevel},
		{"debug", zap.DebugLevel},
		{"INFO", zap.InfoLevel},
		{"warning", zap.WarnLevel},
		{"error", zap.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("verbose")
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	log, err := New(Config{Level: "warn", Output: path})
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("kept", zap.Uint64("entity", 7))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"msg":"kept"`)
	assert.Contains(t, lines[0], `"entity":7`)
	assert.NotContains(t, lines[0], "caller")
}

func TestNewRejectsUnknownEncoding(t *testing.T) {
	_, err := New(Config{Encoding: "xml"})
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}
