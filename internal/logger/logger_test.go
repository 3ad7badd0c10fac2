package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encly/internal/config"
	"encly/internal/logger"
)

func TestNew_JSONToStdout(t *testing.T) {
	var buf bytes.Buffer
	l, closer, err := logger.New(&config.LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	l.Debug("hidden")
	l.Info("link created", slog.String("short_code", "abc123"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "link created", record["msg"])
	assert.Equal(t, "abc123", record["short_code"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	l, _, err := logger.New(&config.LogConfig{Level: "warn", Format: "text"}, &buf)
	require.NoError(t, err)

	l.Info("ignored")
	l.Warn("cache unavailable")

	assert.NotContains(t, buf.String(), "ignored")
	assert.Contains(t, buf.String(), "msg=\"cache unavailable\"")
}

func TestNew_RotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "encly.log")

	var buf bytes.Buffer
	l, closer, err := logger.New(&config.LogConfig{
		Level:      "info",
		Format:     "json",
		OutputPath: path,
		MaxSize:    1,
		MaxBackups: 1,
	}, &buf)
	require.NoError(t, err)

	l.Info("written twice")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written twice")
	assert.Contains(t, buf.String(), "written twice")
}

func TestNew_InvalidSettings(t *testing.T) {
	_, _, err := logger.New(&config.LogConfig{Level: "verbose"}, &bytes.Buffer{})
	assert.Error(t, err)

	_, _, err = logger.New(&config.LogConfig{Level: "info", Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := logger.ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequestContext(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))
	fallback := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))

	assert.Same(t, fallback, logger.FromContext(context.Background(), fallback))
	assert.Empty(t, logger.RequestIDFromContext(context.Background()))

	id := logger.NewRequestID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	ctx := logger.WithRequestID(context.Background(), base, id)
	assert.Equal(t, id, logger.RequestIDFromContext(ctx))

	logger.FromContext(ctx, fallback).Info("resolved")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, id, record["request_id"])
}
