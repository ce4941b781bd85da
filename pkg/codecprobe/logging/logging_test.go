package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesThroughSlog(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := New(slog.New(handler)).With("component", "test")

	logger.Debug(context.Background(), "library opened", Path("/opt/lib/libavcodec.so"), Symbol("av_codec_next"))

	out := buf.String()
	assert.Contains(t, out, "library opened")
	assert.Contains(t, out, "component=test")
	assert.Contains(t, out, "library=/opt/lib/libavcodec.so")
	assert.Contains(t, out, "symbol=av_codec_next")
}

func TestNewNilUsesDefault(t *testing.T) {
	assert.NotNil(t, New(nil))
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error(context.Background(), "dropped")
	assert.NotNil(t, logger.With("k", "v"))
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("trace")
	assert.Error(t, err)
}
