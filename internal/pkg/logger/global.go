package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type requestIDKey struct{}

var (
	mu           sync.RWMutex
	globalLogger *ZapLogger

	fallbackOnce sync.Once
	fallback     *ZapLogger
)

// SetGlobalLogger installs the process wide logger. Call it once at startup;
// nil restores the stderr fallback.
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the installed logger, or an info level stderr
// logger when none has been set.
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	fallbackOnce.Do(func() {
		zl, err := NewZapLogger(ZapConfig{})
		if err != nil {
			zl = NewNop()
		}
		fallback = zl
	})
	return fallback
}

func Info(msg string, fields ...Field)  { GetGlobalLogger().Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { GetGlobalLogger().Warn(msg, fields...) }
func Debug(msg string, fields ...Field) { GetGlobalLogger().Debug(msg, fields...) }
func Error(msg string, fields ...Field) { GetGlobalLogger().Error(msg, fields...) }

// Fatal logs and exits the process
func Fatal(msg string, fields ...Field) { GetGlobalLogger().Fatal(msg, fields...) }

// WithRequestID stores a request id on ctx. The *Ctx helpers log it and the
// backend client forwards it as X-Request-ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request id stored by WithRequestID
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

func fromContext(ctx context.Context) *zap.Logger {
	l := GetGlobalLogger().Logger
	if id := RequestIDFromContext(ctx); id != "" {
		l = l.With(zap.String("request_id", id))
	}
	return l
}

func InfoCtx(ctx context.Context, msg string, fields ...Field) { fromContext(ctx).Info(msg, fields...) }
func WarnCtx(ctx context.Context, msg string, fields ...Field) { fromContext(ctx).Warn(msg, fields...) }
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	fromContext(ctx).Error(msg, fields...)
}
func DebugCtx(ctx context.Context, msg string, fields ...Field) {
	fromContext(ctx).Debug(msg, fields...)
}
