package logging

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	initOnce sync.Once
	logger   *zap.Logger
	exitFunc = os.Exit
)

// L returns the shared application logger, initializing it on first use.
func L() *zap.Logger {
	initOnce.Do(func() {
		logger = newLogger()
	})
	return logger
}

func newLogger() *zap.Logger {
	level := parseLevel(os.Getenv("KIGEN_LOG_LEVEL"))

	var encoder zapcore.Encoder
	var sink zapcore.WriteSyncer
	switch strings.ToLower(os.Getenv("KIGEN_LOG_FORMAT")) {
	case "json", "structured":
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(cfg)
		sink = zapcore.Lock(os.Stdout)
	default:
		// Console output goes to stderr so JSON output stays clean if enabled later.
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		sink = zapcore.Lock(os.Stderr)
	}

	core := zapcore.NewCore(encoder, sink, zap.NewAtomicLevelAt(level))

	var opts []zap.Option
	if strings.EqualFold(os.Getenv("KIGEN_LOG_SOURCE"), "true") {
		opts = append(opts, zap.AddCaller())
	}
	return zap.New(core, opts...)
}

func parseLevel(value string) zapcore.Level {
	switch strings.ToLower(value) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// With returns a child logger with additional fields.
func With(fields ...zap.Field) *zap.Logger {
	return L().With(fields...)
}

// Fatal logs the message at error level and exits with status 1.
func Fatal(msg string, fields ...zap.Field) {
	L().Error(msg, fields...)
	_ = L().Sync()
	exitFunc(1)
}
