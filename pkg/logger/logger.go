// Package logger provides the diagnostic logger shared by toolbot packages.
// Diagnostics go to stderr; the console conversation never passes through it.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Logger is the logging interface used by the library.
type Logger interface {
	Info(msg string, obj any)
	Warn(msg string, obj any)
	Debug(msg string, obj any)
	Error(msg string, obj any)
}

// NopLogger discards all log messages.
type NopLogger struct{}

func (NopLogger) Info(string, any)  {}
func (NopLogger) Warn(string, any)  {}
func (NopLogger) Debug(string, any) {}
func (NopLogger) Error(string, any) {}

// Options controls a writer logger.
type Options struct {
	// Verbose enables DEBUG lines.
	Verbose bool
	// Fields are merged into every object logged, e.g. the session id.
	Fields map[string]any
	// Now overrides the clock; used by tests.
	Now func() time.Time
}

type writerLogger struct {
	w    io.Writer
	opts Options
}

// NewWriterLogger builds a logger that writes one line per entry to w.
func NewWriterLogger(w io.Writer, opts Options) Logger {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return writerLogger{w: w, opts: opts}
}

func (l writerLogger) write(level, msg string, obj any) {
	if l.w == nil {
		return
	}

	ts := l.opts.Now().Format(time.RFC3339)
	obj = l.withFields(obj)
	if obj == nil {
		_, _ = fmt.Fprintf(l.w, "%s %-5s %s\n", ts, level, msg)
		return
	}

	b, err := json.Marshal(obj)
	if err != nil {
		_, _ = fmt.Fprintf(l.w, "%s %-5s %s obj=%q\n", ts, level, msg, fmt.Sprintf("%+v", obj))
		return
	}
	_, _ = fmt.Fprintf(l.w, "%s %-5s %s obj=%s\n", ts, level, msg, string(b))
}

// withFields merges the static fields into map payloads. Other payload
// shapes are wrapped under "data".
func (l writerLogger) withFields(obj any) any {
	if len(l.opts.Fields) == 0 {
		return obj
	}
	merged := make(map[string]any, len(l.opts.Fields)+1)
	for k, v := range l.opts.Fields {
		merged[k] = v
	}
	switch v := obj.(type) {
	case nil:
	case map[string]any:
		for k, val := range v {
			merged[k] = val
		}
	default:
		merged["data"] = v
	}
	return merged
}

func (l writerLogger) Info(msg string, obj any)  { l.write("INFO", msg, obj) }
func (l writerLogger) Warn(msg string, obj any)  { l.write("WARN", msg, obj) }
func (l writerLogger) Error(msg string, obj any) { l.write("ERROR", msg, obj) }

func (l writerLogger) Debug(msg string, obj any) {
	if !l.opts.Verbose {
		return
	}
	l.write("DEBUG", msg, obj)
}

// OrNop returns l, or a NopLogger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return l
}
