package logger

import (
	"fmt"

	"go.uber.org/zap"
)

var log *zap.Logger = zap.NewNop()

func Init(mode string) error {
	var (
		l   *zap.Logger
		err error
	)

	switch mode {
	case "prod":
		l, err = zap.NewProduction()
	case "dev", "debug":
		l, err = zap.NewDevelopment()
	default:
		return fmt.Errorf("unknown log mode: %q (allowed: prod, dev, debug)", mode)
	}
	if err != nil {
		return fmt.Errorf("build zap logger: %w", err)
	}

	log = l
	return nil
}

func InitTestLogger() {
	log = zap.NewNop()
}

func Sync() {
	_ = log.Sync()
}

func Debug(msg string, fields ...zap.Field) {
	log.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	log.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	log.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	log.Error(msg, fields...)
}
