package errors

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	loggerMu sync.RWMutex
	logger   = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
)

// Logger returns the package logger shared by the settings library.
func Logger() zerolog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// SetLogger replaces the package logger. Useful for routing library output
// into an application's configured zerolog instance.
func SetLogger(l zerolog.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

// LogHandler is an ErrorHandler that logs errors through the package logger.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

// HandleError logs a SettingsError.
func (h *LogHandler) HandleError(err *SettingsError) {
	if err == nil {
		return
	}
	l := Logger()
	ev := l.Error().
		Str("op", err.Op).
		Str("kind", err.Kind.String())
	if err.Control != "" {
		ev = ev.Str("control", err.Control)
	}
	ev.Err(err.Err).Msg("settings error")
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	l := Logger()
	ev := l.Error().
		Str("op", err.Op).
		Interface("value", err.Value)
	if err.Control != "" {
		ev = ev.Str("control", err.Control)
	}
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("recovered panic")
}
