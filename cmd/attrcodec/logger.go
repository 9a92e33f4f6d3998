package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the CLI logger. Output goes to w so that standard output
// carries only documents. Production encoding is JSON; the development
// environment switches to console output.
func newLogger(cfg *config, w io.Writer) *zap.Logger {
	level := zapcore.WarnLevel
	if cfg.verbose {
		level = zapcore.DebugLevel
	}

	var encoder zapcore.Encoder
	if cfg.environment == "development" {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)

	return zap.New(core).With(zap.String("command", cfg.command))
}
