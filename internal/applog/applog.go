// Package applog wraps go.uber.org/zap behind the small leveled interface
// that package solver logs through; solver imports zap only for its
// zap.Field constructors, and package knapsack does no logging of its
// own. Verbosity is selected once at the CLI boundary (cmd/swiper) and
// threaded down as a Logger.
package applog

import "go.uber.org/zap"

// Level mirrors the CLI's -v/-vv verbosity flags.
type Level int

const (
	// LevelWarn is the default: only warnings (e.g. backend overflow) are logged.
	LevelWarn Level = iota
	// LevelInfo corresponds to -v.
	LevelInfo
	// LevelDebug corresponds to -vv.
	LevelDebug
)

// Logger is the leveled logging interface used throughout this module.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
}

// zapLogger adapts *zap.Logger to Logger.
type zapLogger struct {
	z *zap.Logger
}

func (l *zapLogger) Debug(msg string, fields ...zap.Field) { l.z.Debug(msg, fields...) }
func (l *zapLogger) Info(msg string, fields ...zap.Field)  { l.z.Info(msg, fields...) }
func (l *zapLogger) Warn(msg string, fields ...zap.Field)  { l.z.Warn(msg, fields...) }

// New builds a Logger at the given verbosity. LevelDebug uses zap's
// development config (human-readable, caller info); LevelInfo and
// LevelWarn use the production config with the level floor adjusted.
func New(level Level) Logger {
	var cfg zap.Config
	if level == LevelDebug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig.TimeKey = ""
	}

	switch level {
	case LevelDebug:
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case LevelInfo:
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	z, err := cfg.Build()
	if err != nil {
		// cfg.Build only fails on a malformed encoder/sink configuration,
		// which the constants above never produce.
		panic(err)
	}

	return &zapLogger{z: z}
}

// Noop returns a Logger that discards everything, used by callers (and
// tests) that don't want log output.
func Noop() Logger {
	return &zapLogger{z: zap.NewNop()}
}
