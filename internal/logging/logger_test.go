package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"WARN":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestSetup_RotatingFile(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	path := filepath.Join(t.TempDir(), "pobsd.log")
	w := Setup(Options{Level: "info", File: path, MaxSizeMB: 1, MaxBackups: 1})

	lj, ok := w.(*lumberjack.Logger)
	require.True(t, ok, "expected a lumberjack writer, got %T", w)
	t.Cleanup(func() { lj.Close() })

	log.Debug().Msg("hidden")
	log.Info().Str("file", "games.db").Msg("Loaded database")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Loaded database")
	assert.NotContains(t, string(data), "hidden")
}

func TestSetup_Console(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	w := Setup(Options{Level: "debug"})
	_, ok := w.(zerolog.ConsoleWriter)
	assert.True(t, ok)
	assert.Equal(t, zerolog.DebugLevel, log.Logger.GetLevel())
}
