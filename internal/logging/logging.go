// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the slog logger used by the CLI: text on stderr,
// and optionally JSON to a size-rotated log file.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/pdiddy/medication-extractor/pkg/types"
)

const (
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
)

// New returns a logger writing text to console at Info, or Debug when
// cfg.Verbose is set. When cfg.LogFile is set, records are also written as
// JSON to that file, rotated by size. The returned Closer releases the file
// and is never nil.
func New(cfg types.LoggingConfig, console io.Writer) (*slog.Logger, io.Closer, error) {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	consoleHandler := slog.NewTextHandler(console, &slog.HandlerOptions{Level: level})
	if cfg.LogFile == "" {
		return slog.New(consoleHandler), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}

	maxSize := cfg.MaxSizeMB
	if maxSize <= 0 {
		maxSize = defaultMaxSizeMB
	}
	maxBackups := cfg.MaxBackups
	if maxBackups <= 0 {
		maxBackups = defaultMaxBackups
	}

	file := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
	}

	// The file always gets debug records so a quiet console still leaves
	// a full trail.
	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})

	return slog.New(&multiHandler{handlers: []slog.Handler{consoleHandler, fileHandler}}), file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// multiHandler fans each record out to several handlers.
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range m.handlers {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}
