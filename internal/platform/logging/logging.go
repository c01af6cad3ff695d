package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

const EnvLogLevel = "FLATPICK_LOG_LEVEL"

// New builds the process logger. The env override wins over level.
func New(app, level string, out io.Writer) zerolog.Logger {
	lvl, ok := ParseLevel(os.Getenv(EnvLogLevel))
	if !ok {
		lvl, _ = ParseLevel(level)
	}
	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !isTerminal(out),
	}
	return NewWithWriter(app, lvl, writer)
}

func NewWithWriter(app string, lvl zerolog.Level, w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(lvl).With().Timestamp().Str("app", app).Logger()
}

// Nop is the test profile.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// ParseLevel maps a level name to zerolog. ok is false for empty or unknown names,
// in which case the returned level is warn.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.WarnLevel, false
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
