package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Field is a key/value pair attached to a log event.
type Field struct {
	// Key is the field name as it appears in the structured output.
	Key string
	// Value is the field payload.
	Value any
}

// String creates a Field holding a string value.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates a Field holding an int value.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Int64 creates a Field holding an int64 value.
func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }

// Uint64 creates a Field holding a uint64 value.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a Field holding a float64 value.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Dur creates a Field holding a time.Duration value.
func Dur(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

// Err creates a Field holding an error under the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the logging interface used throughout the engine. Implementations
// must be safe for concurrent use.
type Logger interface {
	// Debug logs a message at debug level with optional structured fields.
	Debug(msg string, fields ...Field)
	// Info logs a message at info level with optional structured fields.
	Info(msg string, fields ...Field)
	// Warn logs a message at warn level with optional structured fields.
	Warn(msg string, fields ...Field)
	// Error logs a message at error level with optional structured fields.
	Error(msg string, fields ...Field)
}

// ZerologAdapter adapts a zerolog.Logger to the Logger interface.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
//
// Parameters:
//   - logger: The zerolog logger to adapt.
//
// Returns:
//   - *ZerologAdapter: The adapted logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewLogger creates a Logger writing JSON events to w, tagged with the given
// component name.
//
// Parameters:
//   - w: The destination writer.
//   - component: The component name added to every event.
//
// Returns:
//   - Logger: The component logger.
func NewLogger(w io.Writer, component string) Logger {
	zl := zerolog.New(w).With().
		Timestamp().
		Str("component", component).
		Logger()
	return &ZerologAdapter{logger: zl}
}

// NewDefaultLogger creates a Logger writing human-readable output to stderr.
// Intended for CLI use where JSON logs would clutter the terminal.
//
// Returns:
//   - Logger: The default logger.
func NewDefaultLogger() Logger {
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return &ZerologAdapter{logger: zerolog.New(console).With().Timestamp().Logger()}
}

// Debug logs a message at debug level.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	a.emit(a.logger.Debug(), msg, fields)
}

// Info logs a message at info level.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	a.emit(a.logger.Info(), msg, fields)
}

// Warn logs a message at warn level.
func (a *ZerologAdapter) Warn(msg string, fields ...Field) {
	a.emit(a.logger.Warn(), msg, fields)
}

// Error logs a message at error level.
func (a *ZerologAdapter) Error(msg string, fields ...Field) {
	a.emit(a.logger.Error(), msg, fields)
}

// emit attaches the fields to the event and sends it.
func (a *ZerologAdapter) emit(ev *zerolog.Event, msg string, fields []Field) {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			ev = ev.Str(f.Key, v)
		case int:
			ev = ev.Int(f.Key, v)
		case int64:
			ev = ev.Int64(f.Key, v)
		case uint64:
			ev = ev.Uint64(f.Key, v)
		case float64:
			ev = ev.Float64(f.Key, v)
		case time.Duration:
			ev = ev.Dur(f.Key, v)
		case error:
			ev = ev.AnErr(f.Key, v)
		case nil:
			ev = ev.Interface(f.Key, nil)
		default:
			ev = ev.Interface(f.Key, v)
		}
	}
	ev.Msg(msg)
}

// NopLogger is a Logger that discards everything. Useful for tests and quiet
// mode.
type NopLogger struct{}

// Debug discards the event.
func (NopLogger) Debug(string, ...Field) {}

// Info discards the event.
func (NopLogger) Info(string, ...Field) {}

// Warn discards the event.
func (NopLogger) Warn(string, ...Field) {}

// Error discards the event.
func (NopLogger) Error(string, ...Field) {}
