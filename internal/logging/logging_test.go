package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"tasklist/internal/config"
)

func TestDebugEnabled(t *testing.T) {
	t.Setenv("TL_DEBUG", "")
	assert.False(t, DebugEnabled())

	t.Setenv("TL_DEBUG", "1")
	assert.True(t, DebugEnabled())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"", log.WarnLevel},
		{"loud", log.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestParseFormatter(t *testing.T) {
	assert.Equal(t, log.JSONFormatter, ParseFormatter("json"))
	assert.Equal(t, log.LogfmtFormatter, ParseFormatter("logfmt"))
	assert.Equal(t, log.TextFormatter, ParseFormatter("text"))
	assert.Equal(t, log.TextFormatter, ParseFormatter("xml"))
}

func TestNew_RespectsLevel(t *testing.T) {
	t.Setenv("TL_DEBUG", "")
	var buf bytes.Buffer
	logger := New(&buf, "warn", "logfmt")

	logger.Info("hidden")
	logger.Warn("storage write failed", "key", "tasks")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "storage write failed")
	assert.Contains(t, out, "key=tasks")
}

func TestNew_DebugEnvironmentWins(t *testing.T) {
	t.Setenv("TL_DEBUG", "1")
	var buf bytes.Buffer
	logger := New(&buf, "error", "text")

	logger.Debug("task added")
	assert.Contains(t, buf.String(), "task added")
}

func TestFromConfig(t *testing.T) {
	t.Setenv("TL_DEBUG", "")
	cfg := config.NewConfig()
	cfg.Logging.Level = "info"

	assert.Equal(t, log.InfoLevel, FromConfig(cfg).GetLevel())
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("nothing")
	assert.Equal(t, log.FatalLevel, logger.GetLevel())
}
