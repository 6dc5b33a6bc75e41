package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlogLogger_WritesStructuredOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewDefault(buf, slog.LevelDebug)

	log.Info(context.Background(), "signed in", "username", "alice")

	out := buf.String()
	assert.Contains(t, out, "signed in")
	assert.Contains(t, out, "username=alice")
}

func TestSlogLogger_WithAddsFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewDefault(buf, slog.LevelDebug).With("component", "gateway")

	log.Warn(context.Background(), "token refresh failed")

	assert.Contains(t, buf.String(), "component=gateway")
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewDefault(buf, slog.LevelError)

	log.Debug(context.Background(), "noise")
	log.Info(context.Background(), "still noise")

	assert.Empty(t, buf.String())
}
