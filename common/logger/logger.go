package logger

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Log is the global logger instance
	Log = zap.NewNop()
)

type ctxKey struct{}

type actorKey struct{}

// RequestIDKey is the gin context key holding the request ID.
const RequestIDKey = "request_id"

// Initialize sets up the logger for the given environment.
func Initialize(env string) *zap.Logger {
	return InitializeWithWriter(env, nil)
}

// InitializeWithWriter sets up the logger and, when extra is non-nil, tees a
// JSON core into it (used for CloudWatch Logs shipping).
func InitializeWithWriter(env string, extra io.Writer) *zap.Logger {
	config := newConfig(env)

	if extra == nil {
		l, err := config.Build()
		if err != nil {
			fmt.Printf("Failed to initialize logger: %v\n", err)
			os.Exit(1)
		}
		Log = l
		return Log
	}

	level := zap.NewAtomicLevelAt(config.Level.Level())
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(config.EncoderConfig),
		zapcore.AddSync(os.Stdout),
		level,
	)
	extraCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(config.EncoderConfig),
		zapcore.AddSync(extra),
		level,
	)

	Log = zap.New(zapcore.NewTee(consoleCore, extraCore), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	return Log
}

func newConfig(env string) zap.Config {
	if env == "production" {
		config := zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		return config
	}
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return config
}

// WithRequestID stores the request ID on ctx.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

// RequestID returns the request ID stored on ctx, or "unknown".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return "unknown"
	}
	if v, ok := ctx.Value(ctxKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}

// WithActor stores the authenticated caller's id on ctx.
func WithActor(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, actorKey{}, userID)
}

// Actor returns the caller id stored on ctx, or "unknown".
func Actor(ctx context.Context) string {
	if ctx == nil {
		return "unknown"
	}
	if v, ok := ctx.Value(actorKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}

// Info logs with the request ID attached.
func Info(ctx context.Context, msg string, fields ...zap.Field) {
	Log.Info(msg, append(fields, zap.String("request_id", RequestID(ctx)))...)
}

// Warn logs with the request ID attached.
func Warn(ctx context.Context, msg string, fields ...zap.Field) {
	Log.Warn(msg, append(fields, zap.String("request_id", RequestID(ctx)))...)
}

// Debug logs with the request ID attached.
func Debug(ctx context.Context, msg string, fields ...zap.Field) {
	Log.Debug(msg, append(fields, zap.String("request_id", RequestID(ctx)))...)
}

// Error logs err with the request ID attached.
func Error(ctx context.Context, msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.String("request_id", RequestID(ctx)))
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	Log.Error(msg, fields...)
}
