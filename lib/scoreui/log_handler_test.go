// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scoreui

import (
	"context"
	"log/slog"
	"testing"
	"time"
)

func testRecord(level slog.Level, message string, args ...any) slog.Record {
	record := slog.NewRecord(time.Date(2021, 4, 12, 19, 0, 0, 0, time.UTC), level, message, 0)
	record.Add(args...)
	return record
}

func TestTUILogHandlerEnabled(t *testing.T) {
	handler := NewTUILogHandler(slog.LevelWarn)
	if handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be below a warn handler's level")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should pass a warn handler")
	}
}

func TestTUILogHandlerDropsRecordsWithoutProgram(t *testing.T) {
	handler := NewTUILogHandler(slog.LevelInfo)
	if err := handler.Handle(context.Background(), testRecord(slog.LevelError, "boom")); err != nil {
		t.Fatalf("Handle without a program: %v", err)
	}
}

func TestTUILogHandlerSummary(t *testing.T) {
	handler := NewTUILogHandler(slog.LevelInfo)

	summary := handler.summarize(testRecord(slog.LevelWarn, "retrying fetch", "attempt", 2))
	if summary != "retrying fetch (attempt=2)" {
		t.Errorf("summary = %q", summary)
	}

	if summary := handler.summarize(testRecord(slog.LevelWarn, "bare")); summary != "bare" {
		t.Errorf("summary without attrs = %q, want bare", summary)
	}
}

func TestTUILogHandlerGroupsQualifyLaterAttrs(t *testing.T) {
	base := NewTUILogHandler(slog.LevelInfo)
	derived := base.WithAttrs([]slog.Attr{slog.String("game", "0042000201")}).
		WithGroup("feed").(*TUILogHandler)

	summary := derived.summarize(testRecord(slog.LevelWarn, "slow", "status", 503))
	if summary != "slow (game=0042000201, feed.status=503)" {
		t.Errorf("summary = %q", summary)
	}

	// The base handler is unaffected by derivation.
	if summary := base.summarize(testRecord(slog.LevelWarn, "slow")); summary != "slow" {
		t.Errorf("base summary = %q, want slow", summary)
	}
}

func TestTUILogHandlerSharesProgramAcrossDerivedHandlers(t *testing.T) {
	base := NewTUILogHandler(slog.LevelInfo)
	derived := base.WithGroup("feed").(*TUILogHandler)
	if derived.program != base.program {
		t.Error("derived handler should share the program pointer")
	}
}
