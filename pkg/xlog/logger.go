// Package xlog is a small wrapper over log/slog used by fnkit to report
// recovered panics and traced results.
package xlog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(NewText(LevelInfo))
}

const (
	LevelDebug slog.Level = slog.LevelDebug
	LevelInfo  slog.Level = slog.LevelInfo
	LevelWarn  slog.Level = slog.LevelWarn
	LevelError slog.Level = slog.LevelError
)

var (
	Int      = slog.Int
	Any      = slog.Any
	Bool     = slog.Bool
	Time     = slog.Time
	String   = slog.String
	Duration = slog.Duration
)

func Err(e error) slog.Attr {
	return slog.Any("error", e)
}

// Rid is the id of a result.
func Rid(id string) slog.Attr {
	return slog.String("resultId", id)
}

type Logger struct {
	json bool
	w    io.Writer
	s    *slog.Logger
}

func NewText(level slog.Level) *Logger {
	return NewTextTo(os.Stdout, level)
}

func NewJSON(level slog.Level) *Logger {
	return NewJSONTo(os.Stdout, level)
}

func NewTextTo(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{s: slog.New(handler), w: w}
}

func NewJSONTo(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{s: slog.New(handler), w: w, json: true}
}

func Default() *Logger {
	return defaultLogger.Load()
}

func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultLogger.Store(l)
}

func Debug(msg string, fields ...slog.Attr) {
	Default().Debug(msg, fields...)
}

func Info(msg string, fields ...slog.Attr) {
	Default().Info(msg, fields...)
}

func Warn(msg string, fields ...slog.Attr) {
	Default().Warn(msg, fields...)
}

func Error(msg string, fields ...slog.Attr) {
	Default().Error(msg, fields...)
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{s: l.s.With(args...), w: l.w, json: l.json}
}

// WithLevel returns a fresh logger on the same writer. Attributes added with
// With are not carried over.
func (l *Logger) WithLevel(level slog.Level) *Logger {
	if l.json {
		return NewJSONTo(l.w, level)
	}
	return NewTextTo(l.w, level)
}

func (l *Logger) Enabled(level slog.Level) bool {
	return l.s.Enabled(context.Background(), level)
}

func (l *Logger) Log(level slog.Level, msg string, fields ...slog.Attr) {
	l.s.LogAttrs(context.Background(), level, msg, fields...)
}

func (l *Logger) Debug(msg string, fields ...slog.Attr) {
	l.Log(slog.LevelDebug, msg, fields...)
}

func (l *Logger) Info(msg string, fields ...slog.Attr) {
	l.Log(slog.LevelInfo, msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...slog.Attr) {
	l.Log(slog.LevelWarn, msg, fields...)
}

func (l *Logger) Error(msg string, fields ...slog.Attr) {
	l.Log(slog.LevelError, msg, fields...)
}
