// Package logging builds the process logger.
package logging

import (
	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level maps the -v/-q flag counts to a log level. Info is the default;
// each -v lowers it by one step and each -q raises it, clamped to
// Debug..Error.
func Level(verbose, quiet int) zapcore.Level {
	steps := quiet - verbose
	lvl := int(zapcore.InfoLevel) + steps
	if lvl < int(zapcore.DebugLevel) {
		return zapcore.DebugLevel
	}
	if lvl > int(zapcore.ErrorLevel) {
		return zapcore.ErrorLevel
	}
	return zapcore.Level(lvl)
}

// New returns a console logger writing to stderr at the given level.
// Level names are colored unless color output is off.
func New(level zapcore.Level) (*zap.Logger, error) {
	return newConfig(level).Build()
}

func newConfig(level zapcore.Level) zap.Config {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Development = false
	cfg.DisableStacktrace = true
	cfg.DisableCaller = level > zapcore.DebugLevel
	cfg.EncoderConfig.TimeKey = ""
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if color.NoColor {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg
}
