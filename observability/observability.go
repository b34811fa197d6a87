package observability

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Logger is the structured logging hook used across the library. Callers that
// do not care pass NopLogger.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type Field interface {
	Key() string
	Value() interface{}
}

type stringField struct{ key, val string }

func (f stringField) Key() string        { return f.key }
func (f stringField) Value() interface{} { return f.val }

type intField struct {
	key string
	val int
}

func (f intField) Key() string        { return f.key }
func (f intField) Value() interface{} { return f.val }

type floatField struct {
	key string
	val float64
}

func (f floatField) Key() string        { return f.key }
func (f floatField) Value() interface{} { return f.val }

type errorField struct {
	key string
	err error
}

func (f errorField) Key() string        { return f.key }
func (f errorField) Value() interface{} { return f.err }

func String(key, value string) Field        { return stringField{key, value} }
func Int(key string, value int) Field       { return intField{key, value} }
func Float(key string, value float64) Field { return floatField{key, value} }
func Error(key string, err error) Field     { return errorField{key, err} }

type NopLogger struct{}

func (NopLogger) Debug(string, ...Field) {}
func (NopLogger) Info(string, ...Field)  {}
func (NopLogger) Warn(string, ...Field)  {}
func (NopLogger) Error(string, ...Field) {}
func (NopLogger) With(...Field) Logger   { return NopLogger{} }

// writerLogger emits one key=value line per entry. Used by the CLI; tests use
// it with a bytes.Buffer.
type writerLogger struct {
	mu   *sync.Mutex
	out  io.Writer
	with []Field
}

// NewWriterLogger returns a Logger writing plain key=value lines to out.
func NewWriterLogger(out io.Writer) Logger {
	return &writerLogger{mu: &sync.Mutex{}, out: out}
}

func (l *writerLogger) log(level, msg string, fields []Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s %s", level, msg)
	for _, f := range l.with {
		fmt.Fprintf(l.out, " %s=%v", f.Key(), f.Value())
	}
	for _, f := range fields {
		fmt.Fprintf(l.out, " %s=%v", f.Key(), f.Value())
	}
	fmt.Fprintln(l.out)
}

func (l *writerLogger) Debug(msg string, fields ...Field) { l.log("DEBUG", msg, fields) }
func (l *writerLogger) Info(msg string, fields ...Field)  { l.log("INFO", msg, fields) }
func (l *writerLogger) Warn(msg string, fields ...Field)  { l.log("WARN", msg, fields) }
func (l *writerLogger) Error(msg string, fields ...Field) { l.log("ERROR", msg, fields) }

func (l *writerLogger) With(fields ...Field) Logger {
	combined := make([]Field, 0, len(l.with)+len(fields))
	combined = append(combined, l.with...)
	combined = append(combined, fields...)
	return &writerLogger{mu: l.mu, out: l.out, with: combined}
}

// Tracer provides tracing hooks for long rendering runs.
type Tracer interface {
	StartSpan(ctx context.Context, name string) (context.Context, Span)
}

// Span represents a tracing span.
type Span interface {
	SetTag(key string, value interface{})
	SetError(err error)
	Finish()
}

type nopTracer struct{}

func (nopTracer) StartSpan(ctx context.Context, _ string) (context.Context, Span) {
	return ctx, nopSpan{}
}

type nopSpan struct{}

func (nopSpan) SetTag(string, interface{}) {}
func (nopSpan) SetError(error)             {}
func (nopSpan) Finish()                    {}

// NopTracer returns a tracer that does nothing.
func NopTracer() Tracer { return nopTracer{} }
