// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

// openFileLogHandler creates a JSON handler writing to path, which is
// created or truncated. The returned function closes the file.
func openFileLogHandler(path string, level slog.Level) (slog.Handler, func(), error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	return handler, func() { file.Close() }, nil
}

// fanoutHandler sends each record to every sub-handler enabled for its
// level.
type fanoutHandler []slog.Handler

func (handlers fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (handlers fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (handlers fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithAttrs(attrs)
	}
	return derived
}

func (handlers fanoutHandler) WithGroup(name string) slog.Handler {
	derived := make(fanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithGroup(name)
	}
	return derived
}

// mutableHandler drops every record while muted is set. It keeps stderr
// output from corrupting the alt screen once the dashboard is running;
// derived handlers share the flag.
type mutableHandler struct {
	inner slog.Handler
	muted *atomic.Bool
}

func newMutableHandler(inner slog.Handler) mutableHandler {
	return mutableHandler{inner: inner, muted: &atomic.Bool{}}
}

func (handler mutableHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return !handler.muted.Load() && handler.inner.Enabled(ctx, level)
}

func (handler mutableHandler) Handle(ctx context.Context, record slog.Record) error {
	if handler.muted.Load() {
		return nil
	}
	return handler.inner.Handle(ctx, record)
}

func (handler mutableHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return mutableHandler{inner: handler.inner.WithAttrs(attrs), muted: handler.muted}
}

func (handler mutableHandler) WithGroup(name string) slog.Handler {
	return mutableHandler{inner: handler.inner.WithGroup(name), muted: handler.muted}
}
