// Package logging builds the zap loggers of the command line tool. Library
// packages never log unless a logger is handed to them.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options select where and what to log.
type Options struct {
	Level string // debug, info, warn or error
	File  string // rotated JSON log file, stderr when empty
}

// ParseLevel reads a zap level name in any letter case; empty means info.
func ParseLevel(s string) (zapcore.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return zapcore.InfoLevel, nil
	}

	return zapcore.ParseLevel(strings.ToLower(s))
}

// New creates a logger and the function flushing it.
func New(opts Options) (*zap.Logger, func(), error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	core := newCore(opts, level)
	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	return logger, func() { _ = logger.Sync() }, nil
}

func newCore(opts Options, level zapcore.Level) zapcore.Core {
	if opts.File == "" {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(os.Stderr), level)
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    2, // megabytes
		MaxBackups: 5,
		MaxAge:     15, // days
		Compress:   true,
	})

	cfg := zap.NewProductionConfig()
	return zapcore.NewCore(zapcore.NewJSONEncoder(cfg.EncoderConfig), writer, level)
}
