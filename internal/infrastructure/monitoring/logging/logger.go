// Package logging defines the structured logging contract used across the
// engine and its zap-backed implementation.  Components depend on the Logger
// interface only; go.uber.org/zap is an implementation detail of this package
// and must not leak into domain or interface code.
package logging

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a typed key-value pair attached to a log entry.  A concrete struct
// keeps call sites explicit and lets the zap adapter pick allocation-free
// encodings for the common value types.
type Field struct {
	Key   string
	Value interface{}
}

// String constructs a string-valued Field.
func String(key, val string) Field { return Field{Key: key, Value: val} }

// Int constructs an int-valued Field.
func Int(key string, val int) Field { return Field{Key: key, Value: val} }

// Int64 constructs an int64-valued Field.
func Int64(key string, val int64) Field { return Field{Key: key, Value: val} }

// Float64 constructs a float64-valued Field.
func Float64(key string, val float64) Field { return Field{Key: key, Value: val} }

// Bool constructs a bool-valued Field.
func Bool(key string, val bool) Field { return Field{Key: key, Value: val} }

// Duration constructs a time.Duration-valued Field.
func Duration(key string, val time.Duration) Field { return Field{Key: key, Value: val} }

// Err records an error under the canonical "error" key.  A nil error renders
// as the literal string "<nil>" rather than being dropped, so a log line
// always shows whether the field was attached.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: "<nil>"}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Any constructs a Field from an arbitrary value.  Prefer the typed
// constructors; Any falls back to reflection-based encoding.
func Any(key string, val interface{}) Field { return Field{Key: key, Value: val} }

// Logger is the engine-wide logging contract.  Implementations must be safe
// for concurrent use.
type Logger interface {
	// Debug records high-volume diagnostic detail, silenced in production by
	// raising the level to info.
	Debug(msg string, fields ...Field)

	// Info records routine operational events.
	Info(msg string, fields ...Field)

	// Warn records recoverable abnormal conditions.
	Warn(msg string, fields ...Field)

	// Error records failures scoped to a single request or operation.
	Error(msg string, fields ...Field)

	// Fatal records the message and exits the process.  Startup-only; never
	// call on a request path.
	Fatal(msg string, fields ...Field)

	// With returns a child logger carrying fields on every subsequent entry.
	// The receiver is unchanged.
	With(fields ...Field) Logger

	// Named returns a child logger whose name extends the parent's with a
	// period separator ("app" → "app.http").
	Named(name string) Logger
}

// LogConfig carries the construction parameters for NewLogger, normally
// populated from the application config file.
type LogConfig struct {
	// Level is the minimum severity emitted: "debug", "info", "warn", or
	// "error" (case-insensitive).  Unknown or empty values mean "info".
	Level string `yaml:"level" json:"level"`

	// Format is "json" for aggregation pipelines or "console" for local
	// development.  Anything else means "json".
	Format string `yaml:"format" json:"format"`

	// OutputPaths lists sinks for log entries; "stdout" and "stderr" are
	// recognized specially, other entries are file paths.  Nil means stdout.
	OutputPaths []string `yaml:"output_paths" json:"output_paths"`

	// ErrorOutputPaths lists sinks for zap's own failures.  Nil means stderr.
	ErrorOutputPaths []string `yaml:"error_output_paths" json:"error_output_paths"`
}

// zapLogger adapts *zap.Logger to the Logger interface.  Fields are converted
// per call; zap pools the resulting zap.Field values internally.
type zapLogger struct {
	z *zap.Logger
}

func toZapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			out = append(out, zap.String(f.Key, v))
		case int:
			out = append(out, zap.Int(f.Key, v))
		case int64:
			out = append(out, zap.Int64(f.Key, v))
		case float64:
			out = append(out, zap.Float64(f.Key, v))
		case bool:
			out = append(out, zap.Bool(f.Key, v))
		case time.Duration:
			out = append(out, zap.Duration(f.Key, v))
		case error:
			out = append(out, zap.NamedError(f.Key, v))
		default:
			out = append(out, zap.Any(f.Key, v))
		}
	}
	return out
}

func (l *zapLogger) Debug(msg string, fields ...Field) { l.z.Debug(msg, toZapFields(fields)...) }
func (l *zapLogger) Info(msg string, fields ...Field)  { l.z.Info(msg, toZapFields(fields)...) }
func (l *zapLogger) Warn(msg string, fields ...Field)  { l.z.Warn(msg, toZapFields(fields)...) }
func (l *zapLogger) Error(msg string, fields ...Field) { l.z.Error(msg, toZapFields(fields)...) }
func (l *zapLogger) Fatal(msg string, fields ...Field) { l.z.Fatal(msg, toZapFields(fields)...) }

func (l *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{z: l.z.With(toZapFields(fields)...)}
}

func (l *zapLogger) Named(name string) Logger {
	return &zapLogger{z: l.z.Named(name)}
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// NewLogger builds a zap-backed Logger from cfg, filling unset fields with
// info level, JSON encoding, stdout output, and stderr error output.  It
// fails only when zap cannot open an output path.
func NewLogger(cfg LogConfig) (Logger, error) {
	outputs := cfg.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stdout"}
	}
	errOutputs := cfg.ErrorOutputPaths
	if len(errOutputs) == 0 {
		errOutputs = []string{"stderr"}
	}

	console := cfg.Format == "console"

	encCfg := zap.NewProductionEncoderConfig()
	encoding := "json"
	if console {
		encCfg = zap.NewDevelopmentEncoderConfig()
		encoding = "console"
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	z, err := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(cfg.Level)),
		Development:      console,
		Encoding:         encoding,
		EncoderConfig:    encCfg,
		OutputPaths:      outputs,
		ErrorOutputPaths: errOutputs,
	}.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("logging: failed to build zap logger: %w", err)
	}
	return &zapLogger{z: z}, nil
}

// NewLoggerFromCore wraps an existing zapcore.Core, which is how tests attach
// an observer core to capture entries.
func NewLoggerFromCore(core zapcore.Core) Logger {
	return &zapLogger{z: zap.New(core, zap.AddCallerSkip(1))}
}

type nopLogger struct{}

func (nopLogger) Debug(_ string, _ ...Field) {}
func (nopLogger) Info(_ string, _ ...Field)  {}
func (nopLogger) Warn(_ string, _ ...Field)  {}
func (nopLogger) Error(_ string, _ ...Field) {}
func (nopLogger) Fatal(_ string, _ ...Field) {}
func (n nopLogger) With(_ ...Field) Logger   { return n }
func (n nopLogger) Named(_ string) Logger    { return n }

// NewNopLogger returns a Logger that discards everything.  Constructors use
// it as the fallback when the caller passes nil.
func NewNopLogger() Logger { return nopLogger{} }

var (
	defaultMu     sync.RWMutex
	defaultLogger Logger = nopLogger{}
)

// SetDefault replaces the process-wide default Logger.  Call it once during
// startup, before goroutines observing Default() exist.
func SetDefault(l Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

// Default returns the process-wide default Logger.  Constructor injection is
// preferred; Default exists for code with no injection point.
func Default() Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	return l
}
