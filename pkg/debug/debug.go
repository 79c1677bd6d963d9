// Package debug provides the process logger for sb.
//
// The terminal UI owns stdout and stderr while it runs, so log records go to
// a file (see config log.file). Debug-level records are only emitted when
// the SB_DEBUG environment variable is set or --debug is passed:
//
//	SB_DEBUG=1 sb
//
// When nothing is configured the logger is zerolog.Nop() and every helper
// is a no-op.
//
// Usage:
//
//	logger := debug.Setup(f, cfg.Log.Level)
//	defer metrics.TimerWithCallback(metrics.UIRender, func(d time.Duration) {
//	    debug.LogTiming("ui.render", d)
//	})()
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

var (
	// enabled is true when SB_DEBUG is set or SetEnabled(true) was called
	enabled bool
	logger  = zerolog.Nop()
	level   = zerolog.InfoLevel
)

func init() {
	if os.Getenv("SB_DEBUG") != "" {
		enabled = true
	}
}

// Enabled returns whether debug logging is enabled.
func Enabled() bool {
	return enabled
}

// SetEnabled allows programmatic control of debug logging. It takes effect
// on the next Setup call and immediately lowers the active logger's level.
func SetEnabled(e bool) {
	enabled = e
	if e {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(level)
	}
}

// Setup installs the process logger writing JSON records to w at the given
// level name ("debug", "info", "warn", ...). An unparsable level falls back
// to info. Debug mode forces the debug level.
func Setup(w io.Writer, levelName string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	lvl, err := zerolog.ParseLevel(levelName)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	level = lvl
	if enabled {
		lvl = zerolog.DebugLevel
	}
	logger = zerolog.New(w).Level(lvl).With().Timestamp().Str("app", "sb").Logger()
	return logger
}

// OpenLogFile opens path for appending, creating parent directories.
func OpenLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

// LogTiming writes a timing message if debug logging is enabled.
func LogTiming(name string, d time.Duration) {
	if !enabled {
		return
	}
	logger.Debug().Str("op", name).Dur("took", d).Msg("timing")
}
