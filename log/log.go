// Package log provides the structured diagnostic logging used by the
// decoder for its two non-error diagnostic paths: skipped unknown fields
// (§4.3, §7) and malformed Dimensions folded to UNKNOWN (§4.8). It wraps
// log/slog with a package-level, swappable handler so an embedding
// application can redirect or silence it without the decoder taking a
// logger as a parameter on every call.
package log

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

// Level mirrors slog.Level with names local to this package so callers
// don't need to import log/slog just to set a level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

var (
	mu      sync.RWMutex
	current atomic.Int32
	logger  = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
)

func init() {
	current.Store(int32(LevelWarn))
}

// SetLevel changes the minimum level logged. Defaults to LevelWarn so a
// library consumer sees nothing unless the decoder hit something worth
// a second look.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	current.Store(int32(l))
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l.slog()}))
}

// SetHandler installs a custom slog.Handler, letting an embedder route
// ncstream's diagnostics into its own structured logging pipeline.
func SetHandler(h slog.Handler) {
	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(h)
}

func get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug logs a diagnostic-level message; used for routine skip-unknown-field
// traces.
func Debug(msg string, args ...any) { get().Log(context.Background(), slog.LevelDebug, msg, args...) }

// Warn logs a warning; used when a Dimension is folded to UNKNOWN (§4.8) or
// another recoverable anomaly is detected.
func Warn(msg string, args ...any) { get().Log(context.Background(), slog.LevelWarn, msg, args...) }

// Error logs an error-level message for conditions that accompany a returned
// error value.
func Error(msg string, args ...any) { get().Log(context.Background(), slog.LevelError, msg, args...) }
