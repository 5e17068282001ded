package logger_fx

import (
	"log"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"fitcore/pkg/logger"
)

var Module = fx.Provide(provideLogger)

func provideLogger() *zap.Logger {
	l, err := logger.New()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	return l
}
