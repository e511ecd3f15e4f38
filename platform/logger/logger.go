package logger

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger *logger
	initOnce     sync.Once
)

type logger struct {
	zapLogger *zap.Logger
}

// Init configures the global logger. Only the first call has an effect.
func Init(levelStr string, asJSON bool) error {
	var initErr error

	initOnce.Do(func() {
		level := zapcore.InfoLevel
		if levelStr != "" {
			if err := level.Set(levelStr); err != nil {
				initErr = fmt.Errorf("logger.Init: parse level %q: %w", levelStr, err)
				return
			}
		}
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.TimeKey = "timestamp"
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		var encoder zapcore.Encoder
		if asJSON {
			encoder = zapcore.NewJSONEncoder(encoderCfg)
		} else {
			encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
			encoder = zapcore.NewConsoleEncoder(encoderCfg)
		}

		core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)
		globalLogger = &logger{
			zapLogger: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)),
		}
	})

	return initErr
}

var nopLogger = &logger{zapLogger: zap.NewNop()}

// SetNopLogger replaces the global logger with one that drops everything.
// Used in tests.
func SetNopLogger() {
	globalLogger = nopLogger
}

// L returns the global logger, or a no-op one before Init.
func L() *logger {
	if globalLogger == nil {
		return nopLogger
	}
	return globalLogger
}

func Sync() error {
	if globalLogger != nil {
		return globalLogger.zapLogger.Sync()
	}
	return nil
}

func With(fields ...Field) *logger {
	return L().With(fields...)
}

// WithComponent tags every entry with the name of the emitting component.
func WithComponent(name string) *logger {
	return L().With(Component(name))
}

func Debug(ctx context.Context, msg string, fields ...Field) { L().Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field)  { L().Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...Field)  { L().Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { L().Error(ctx, msg, fields...) }

func (l *logger) With(fields ...Field) *logger {
	if l == nil {
		return L().With(fields...)
	}
	return &logger{zapLogger: l.zapLogger.With(fields...)}
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Debug(msg, l.fieldsWithTrace(ctx, fields)...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Info(msg, l.fieldsWithTrace(ctx, fields)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Warn(msg, l.fieldsWithTrace(ctx, fields)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Error(msg, l.fieldsWithTrace(ctx, fields)...)
}

func (l *logger) fieldsWithTrace(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return fields
	}

	return append(fields,
		String("trace_id", sc.TraceID().String()),
		String("span_id", sc.SpanID().String()),
	)
}

// NoopLogger satisfies the small Info/Error logger interfaces of other platform packages.
type NoopLogger struct{}

func (NoopLogger) Debug(context.Context, string, ...Field) {}
func (NoopLogger) Info(context.Context, string, ...Field)  {}
func (NoopLogger) Warn(context.Context, string, ...Field)  {}
func (NoopLogger) Error(context.Context, string, ...Field) {}
