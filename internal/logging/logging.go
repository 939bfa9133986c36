// Package logging builds the process logger. Scan diagnostics go to stderr
// so that standard output carries only the scan dump.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// DebugEnv enables debug logging. A value other than "1" or "true" names a
// file that receives the log instead of stderr.
const DebugEnv = "GPSCAN_DEBUG"

// Discard is a logger that drops every record
var Discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// New returns a text logger writing to w. Warnings and errors are always
// shown; verbose or GPSCAN_DEBUG lowers the level to debug. The returned
// func closes the log file opened for GPSCAN_DEBUG, if any.
func New(w io.Writer, verbose bool) (*slog.Logger, func() error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	closeFn := func() error { return nil }
	if env := os.Getenv(DebugEnv); env != "" {
		level = slog.LevelDebug
		if env != "1" && env != "true" {
			f, err := os.OpenFile(env, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err == nil {
				w = f
				closeFn = f.Close
			}
			// Fall back to w if the log file can't be opened
		}
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closeFn
}
