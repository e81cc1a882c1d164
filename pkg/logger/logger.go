package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config options for the logger.
type Config struct {
	Env   string // development -> human-readable console; production -> JSON
	Level string // trace, debug, info, warn, error
}

// Logger wraps zerolog for injection and consistency across packages.
type Logger struct {
	zl zerolog.Logger
}

// New creates a structured logger. Development uses readable console output;
// production emits JSON. Log output goes to stderr so command output on
// stdout stays machine-readable.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stderr
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	level := parseLevel(cfg.Level)
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()

	// Redirect zerolog's global logger for libraries that use it
	log.Logger = zl

	return &Logger{zl: zl}
}

// Nop returns a logger that discards everything (tests).
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Trace, Debug, Info, Warn, Error delegate to zerolog.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With creates a sublogger with fixed fields.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog returns the wrapped logger for direct API access.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
