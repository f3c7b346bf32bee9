package middlewares

import (
	"nanomed-service/internal/app/config"
	"nanomed-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(sessionService contracts.SessionService, internalConfig *config.InternalConfig, logger *zap.Logger) *Middlewares {
	return &Middlewares{
		Log:            logger,
		SessionService: sessionService,
		InternalConfig: internalConfig,
	}
}
