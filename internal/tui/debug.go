package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/javiermolinar/pixsearch/internal/logger"
	"github.com/javiermolinar/pixsearch/internal/search"
)

// debugLog is rebuilt by InitDebugLogger so it picks up the configured output.
var debugLog = logger.New("tui")

var closeDebugLog = func() error { return nil }

// InitDebugLogger routes TUI debug events to path when enabled.
func InitDebugLogger(enabled bool, path string) error {
	if !enabled {
		debugLog = logger.New("tui")
		return nil
	}
	closeFn, err := logger.OpenFile(path)
	if err != nil {
		return err
	}
	closeDebugLog = closeFn
	debugLog = logger.New("tui")
	debugLog.Debug().
		Str("log_file", path).
		Msg("debug start")
	return nil
}

// CloseDebugLogger flushes and closes the debug log file.
func CloseDebugLogger() {
	debugLog.Debug().Msg("debug end")
	_ = closeDebugLog()
	closeDebugLog = func() error { return nil }
	debugLog = logger.New("tui")
}

// LogKeyPress logs a key press event with the UI state it arrived in.
func LogKeyPress(msg tea.KeyMsg, state string) {
	debugLog.Debug().
		Str("key", msg.String()).
		Str("state", state).
		Msg("key press")
}

// LogFocusChange logs a focus change.
func LogFocusChange(from, to focus, reason string) {
	debugLog.Debug().
		Str("from", from.String()).
		Str("to", to.String()).
		Str("reason", reason).
		Msg("focus change")
}

// LogSearch logs an outgoing search request.
func LogSearch(req search.Request) {
	debugLog.Debug().
		Str("request_id", req.ID).
		Uint64("gen", req.Gen).
		Str("query", req.Query).
		Int("page", req.Page).
		Msg("search request")
}

// LogOutcome logs how a search response was applied.
func LogOutcome(req search.Request, outcome search.Outcome, hits int, elapsed time.Duration, err error) {
	level := zerolog.DebugLevel
	if err != nil {
		level = zerolog.WarnLevel
	}
	debugLog.WithLevel(level).
		Str("request_id", req.ID).
		Uint64("gen", req.Gen).
		Str("outcome", outcome.String()).
		Int("hits", hits).
		Dur("elapsed", elapsed).
		Err(err).
		Msg("search response")
}

// LogError logs an error from a background command.
func LogError(context string, err error) {
	if err == nil {
		return
	}
	debugLog.Error().
		Str("context", context).
		Err(err).
		Msg("error")
}
