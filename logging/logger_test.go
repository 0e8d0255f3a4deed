package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New("warn", buf)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("skipping file", "url", "mem://localhost/a.java")
	assert.Contains(t, buf.String(), `"msg":"skipping file"`)
	assert.Contains(t, buf.String(), `"timestamp":`)
	assert.Contains(t, buf.String(), `"url":"mem://localhost/a.java"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARNING"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestIsLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "WARN", "warning", "Error"} {
		assert.True(t, IsLevel(level), level)
	}
	for _, level := range []string{"", "verbose", "trace"} {
		assert.False(t, IsLevel(level), level)
	}
}
