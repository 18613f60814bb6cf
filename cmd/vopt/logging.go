package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger builds the CLI's logger: plain production zap output to
// stderr, or, when logFile is non-empty, the same encoding written to a
// rotating file via lumberjack. Mirrors daoran-rdk's file-appender idiom
// (restart-triggered rotation, no size-based rollover) rather than
// lumberjack's own size-rollover default.
func newLogger(logFile string) (*zap.Logger, error) {
	if logFile == "" {
		return zap.NewProduction()
	}

	rotator := &lumberjack.Logger{
		Filename: logFile,
		MaxSize:  1024 * 1024, // effectively unbounded; rotate on restart instead.
	}
	if err := rotator.Rotate(); err != nil {
		return nil, err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(rotator), zap.InfoLevel)
	return zap.New(core), nil
}
