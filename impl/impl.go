package impl

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/wiedzmin/loadchk/impl/env"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvPrefix = "LOADCHK"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// NewLogger returns stderr logger configured from LOADCHK_LOG_* environment
func NewLogger() *zap.Logger {
	settings, err := env.Load(EnvPrefix)
	if err != nil {
		settings = env.Defaults()
	}
	return NewLoggerTo(zapcore.Lock(os.Stderr), ParseLevel(settings.LogLevel), Colorize(settings.LogColor, os.Stderr.Fd()))
}

// NewLoggerTo builds console logger writing to ws
func NewLoggerTo(ws zapcore.WriteSyncer, level zapcore.Level, color bool) *zap.Logger {
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncodeLevel = zapcore.CapitalLevelEncoder
	if color {
		config.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(config), ws, level)
	return zap.New(core)
}

// ParseLevel falls back to warn for empty or unknown level
func ParseLevel(text string) zapcore.Level {
	if text == "" {
		return zapcore.WarnLevel
	}
	level, err := zapcore.ParseLevel(text)
	if err != nil {
		return zapcore.WarnLevel
	}
	return level
}

func Colorize(mode string, fd uintptr) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
}
