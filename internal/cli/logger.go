package cli

import (
	"io"
	"log/slog"
)

// newLogger builds the process logger. Logs go to w (stderr) so they never
// interleave with command output; only warnings show unless --verbose is set.
func newLogger(c *Config, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if c.LogFormat == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
