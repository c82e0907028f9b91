package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		want    zerolog.Level
		wantErr bool
	}{
		"debug":    {input: "debug", want: zerolog.DebugLevel},
		"info":     {input: "info", want: zerolog.InfoLevel},
		"warn":     {input: "warn", want: zerolog.WarnLevel},
		"empty":    {input: "", want: zerolog.WarnLevel},
		"error":    {input: "error", want: zerolog.ErrorLevel},
		"disabled": {input: "disabled", want: zerolog.Disabled},
		"unknown":  {input: "verbose", want: zerolog.WarnLevel, wantErr: true},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_JSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Config{Level: LevelDebug, Format: FormatJSON, Output: &buf})
	require.NoError(t, err)

	cl := Component(logger, "notify")
	cl.Debug().Str("event", "tool:error").Msg("dispatch")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "notify", line["component"])
	assert.Equal(t, "hooknotify", line["app"])
	assert.Equal(t, "tool:error", line["event"])
	assert.Equal(t, "dispatch", line["message"])
}

func TestNew_LevelFilters(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Config{Level: LevelWarn, Format: FormatJSON, Output: &buf})
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Msg("hidden too")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_ConsoleOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(Config{Level: LevelInfo, Format: FormatConsole, Output: &buf})
	require.NoError(t, err)

	logger.Info().Msg("hello console")
	assert.Contains(t, buf.String(), "hello console")
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)
}
