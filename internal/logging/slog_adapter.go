// Wayfarer - Travel Journal Insights and Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package logging

import (
	"context"
	"log/slog"
	"strings"

	"github.com/rs/zerolog"
)

// SlogHandler implements slog.Handler on top of zerolog so that libraries
// which only speak slog (sutureslog) end up in the same log stream.
type SlogHandler struct {
	logger zerolog.Logger
	attrs  []slog.Attr
	prefix string
}

// NewSlogHandler wraps the given zerolog logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSlogHandler(logger zerolog.Logger) *SlogHandler {
	return &SlogHandler{logger: logger}
}

// NewSlogLogger returns an slog.Logger writing to the global zerolog logger
// with a component field.
//
//	tree := supervisor.NewTree(logging.NewSlogLogger("supervisor"), cfg)
func NewSlogLogger(component string) *slog.Logger {
	return slog.New(NewSlogHandler(WithComponent(component)))
}

// Enabled reports whether the handler handles records at the given level.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return IsLevelEnabled(slogToZerologLevel(level)) && h.logger.GetLevel() <= slogToZerologLevel(level)
}

// Handle writes the record as a zerolog event.
//
//nolint:gocritic // slog.Record is passed by value per slog.Handler interface
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	event := h.logger.WithLevel(slogToZerologLevel(record.Level))
	if event == nil {
		return nil
	}

	for _, attr := range h.attrs {
		event = addAttr(event, h.prefix, attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		event = addAttr(event, h.prefix, attr)
		return true
	})

	event.Msg(record.Message)
	return nil
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &SlogHandler{logger: h.logger, attrs: merged, prefix: h.prefix}
}

// WithGroup returns a new Handler that prefixes keys with name.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &SlogHandler{logger: h.logger, attrs: h.attrs, prefix: h.prefix + name + "."}
}

func addAttr(event *zerolog.Event, prefix string, attr slog.Attr) *zerolog.Event {
	key := prefix + attr.Key
	value := attr.Value.Resolve()

	switch value.Kind() {
	case slog.KindString:
		return event.Str(key, value.String())
	case slog.KindInt64:
		return event.Int64(key, value.Int64())
	case slog.KindUint64:
		return event.Uint64(key, value.Uint64())
	case slog.KindFloat64:
		return event.Float64(key, value.Float64())
	case slog.KindBool:
		return event.Bool(key, value.Bool())
	case slog.KindDuration:
		return event.Dur(key, value.Duration())
	case slog.KindTime:
		return event.Time(key, value.Time())
	case slog.KindGroup:
		groupPrefix := key + "."
		if attr.Key == "" {
			groupPrefix = prefix
		}
		for _, ga := range value.Group() {
			event = addAttr(event, groupPrefix, ga)
		}
		return event
	default:
		if err, ok := value.Any().(error); ok {
			return event.AnErr(strings.TrimSuffix(key, "."), err)
		}
		return event.Interface(key, value.Any())
	}
}

func slogToZerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level < slog.LevelDebug:
		return zerolog.TraceLevel
	case level < slog.LevelInfo:
		return zerolog.DebugLevel
	case level < slog.LevelWarn:
		return zerolog.InfoLevel
	case level < slog.LevelError:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
