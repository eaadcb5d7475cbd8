package log

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"log/slog"
	"testing"
)

func TestSectionFiltering(t *testing.T) {
	SetLevel(slog.LevelDebug)
	defer SetLevel(slog.LevelWarn)

	buf := &bytes.Buffer{}
	logger := New(buf)

	logger.With("section", "desugar").Debug("kept by section")
	logger.Info("kept by record attr", "section", "subst")
	logger.With("section", "typecheck").Info("dropped section")
	logger.Info("dropped without section")
	logger.Warn("warnings always pass")

	out := buf.String()
	assert.Contains(t, out, "kept by section")
	assert.Contains(t, out, "kept by record attr")
	assert.Contains(t, out, "warnings always pass")
	assert.NotContains(t, out, "dropped")
}

func TestLevel(t *testing.T) {
	SetLevel(slog.LevelError)
	defer SetLevel(slog.LevelWarn)

	buf := &bytes.Buffer{}
	New(buf).With("section", "cli").Warn("below the level")
	assert.Empty(t, buf.String())
}
