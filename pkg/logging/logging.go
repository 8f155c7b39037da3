// Package logging builds the process logger. Records go to stdout and to an
// append-only log file that keeps the request outcome history.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// New opens (or creates) logFile for appending and returns a logger writing
// to it and to stdout, plus the shared writer and a close func. An empty
// logFile logs to stdout only.
func New(logFile, level string) (*slog.Logger, io.Writer, func() error, error) {
	var w io.Writer = os.Stdout
	closeFn := func() error { return nil }

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = io.MultiWriter(os.Stdout, f)
		closeFn = f.Close
	}

	return NewWithWriter(w, level), w, closeFn, nil
}

func NewWithWriter(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
