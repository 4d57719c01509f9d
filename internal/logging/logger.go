// Package logging configures the global zerolog logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the level and the sink of the global logger.
type Options struct {
	Level string
	// File enables a rotating log file instead of the console on stderr.
	File       string
	MaxSizeMB  int
	MaxBackups int
	Compress   bool
}

// Setup installs the global logger and returns the writer it logs to.
func Setup(opts Options) io.Writer {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if strings.TrimSpace(opts.File) != "" {
		w = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			Compress:   opts.Compress,
		}
	}

	log.Logger = zerolog.New(w).Level(ParseLevel(opts.Level)).With().Timestamp().Logger()
	return w
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
