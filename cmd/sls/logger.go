package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger writes human-readable debug logs to w when verbose, and only
// JSON-encoded errors otherwise.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	sink := zapcore.AddSync(w)
	if verbose {
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			sink,
			zapcore.DebugLevel,
		)
		return zap.New(core, zap.Development())
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		sink,
		zapcore.ErrorLevel,
	)
	return zap.New(core)
}
