package middlewares

import (
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	TokenManager   contracts.TokenManager
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig, tokenManager contracts.TokenManager) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		TokenManager:   tokenManager,
	}
}
