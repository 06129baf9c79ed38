package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := NewLogger(&buf, "json", "none")
		require.NoError(t, err)
		log.Error("dropped")
		require.Empty(t, buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := NewLogger(&buf, "json", "info")
		require.NoError(t, err)
		log.Debug("hidden")
		log.Info("shown", zap.Int("lines", 3))
		require.NotContains(t, buf.String(), "hidden")
		require.Contains(t, buf.String(), `"level":"info"`)
		require.Contains(t, buf.String(), `"msg":"shown"`)
		require.Contains(t, buf.String(), `"timestamp":`)
		require.NotContains(t, buf.String(), `"caller"`)
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := NewLogger(&buf, "text", "debug")
		require.NoError(t, err)
		log.Warn("careful")
		require.Contains(t, buf.String(), "WARN")
		require.Contains(t, buf.String(), "careful")
	})

	t.Run("errors", func(t *testing.T) {
		_, err := NewLogger(&bytes.Buffer{}, "json", "verbose")
		require.EqualError(t, err, "unknown log level: verbose")
		_, err = NewLogger(&bytes.Buffer{}, "xml", "info")
		require.EqualError(t, err, "unknown log format: xml")
	})
}
