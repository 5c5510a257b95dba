package cmd

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/go-drift/cellkit/cmd/cellkit/internal/config"
)

// newFileLogger returns a JSON logger writing to the rotated log file named
// in cfg. The terminal belongs to the screen while the dashboard runs, so
// nothing is logged to stderr.
func newFileLogger(cfg *config.Resolved) (*zap.Logger, func()) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if cfg.Verbose {
		level.SetLevel(zap.DebugLevel)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	sink := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogSizeMB,
		MaxBackups: cfg.LogBackups,
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(sink), level)
	logger := zap.New(core, zap.AddStacktrace(zap.ErrorLevel)).Named("cellkit")

	restore := zap.ReplaceGlobals(logger)
	return logger, func() {
		_ = logger.Sync()
		restore()
		_ = sink.Close()
	}
}
