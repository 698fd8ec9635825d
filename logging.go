package rclgo

import (
	"time"

	"go.uber.org/zap"
)

// Logger is the minimal structured logging surface the library needs.
// Key/value pairs follow the message.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
}

// Clock abstracts time for tests.
type Clock interface {
	Now() time.Time
}

// NewZapLogger adapts a zap logger to the Logger interface.
func NewZapLogger(base *zap.Logger) Logger {
	return &zapLogger{s: base.Sugar()}
}

// NewDevelopmentLogger returns a human-readable zap-backed logger.
func NewDevelopmentLogger() Logger {
	base, err := zap.NewDevelopment()
	if err != nil {
		return NewStdLogger()
	}
	return NewZapLogger(base)
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() Logger { return NewZapLogger(zap.NewNop()) }

type zapLogger struct {
	s *zap.SugaredLogger
}

func (z *zapLogger) Debug(msg string, kv ...any) { z.s.Debugw(msg, kv...) }
func (z *zapLogger) Info(msg string, kv ...any)  { z.s.Infow(msg, kv...) }
func (z *zapLogger) Warn(msg string, kv ...any)  { z.s.Warnw(msg, kv...) }
func (z *zapLogger) Error(msg string, kv ...any) { z.s.Errorw(msg, kv...) }
