// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandlerWritesAttributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(NewTestLogger(&buf)))

	logger.Warn("service restarted",
		slog.String("service", "http-server"),
		slog.Int("attempt", 2),
		slog.Duration("backoff", time.Second),
		slog.Any("err", errors.New("boom")),
	)

	out := buf.String()
	for _, want := range []string{`"level":"warn"`, `"service":"http-server"`, `"attempt":2`, `"err":"boom"`, "service restarted"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in %s", want, out)
		}
	}
}

func TestSlogHandlerGroupsAndAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := NewSlogHandler(NewTestLogger(&buf)).
		WithAttrs([]slog.Attr{slog.String("tree", "root")}).
		WithGroup("event")
	slog.New(handler).Info("tick", slog.String("kind", "backoff"))

	out := buf.String()
	if !strings.Contains(out, `"event.tree":"root"`) {
		t.Errorf("expected grouped pre-configured attr in %s", out)
	}
	if !strings.Contains(out, `"event.kind":"backoff"`) {
		t.Errorf("expected grouped record attr in %s", out)
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
		{slog.LevelError + 4, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		if got := slogToZerologLevel(tt.in); got != tt.want {
			t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewSlogLogger(t *testing.T) {
	t.Parallel()

	if NewSlogLogger("supervisor") == nil {
		t.Fatal("expected non-nil slog logger")
	}
}
