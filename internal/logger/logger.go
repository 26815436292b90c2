// Package logger configures the shared zerolog logger. The terminal belongs
// to the UI, so output goes to a debug file or nowhere.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	base = zerolog.Nop()
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
}

// New returns a sub-logger tagged with component.
func New(component string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.With().
		Str("component", component).
		Logger()
}

// SetOutput routes all loggers created afterwards to w at level.
func SetOutput(w io.Writer, level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	base = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Disable discards all output from loggers created afterwards.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	base = zerolog.Nop()
}

// OpenFile truncates path and routes debug output to it. The returned func
// closes the file.
func OpenFile(path string) (func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating debug log: %w", err)
	}
	SetOutput(f, zerolog.DebugLevel)
	return func() error {
		Disable()
		return f.Close()
	}, nil
}
