package middlewares

import (
	"time"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	LockerService   contracts.LockerService
	InternalConfig  *config.InternalConfig
	mutationLimiter *RateLimiter
}

func NewMiddlewares(logger *zap.Logger, lockerService contracts.LockerService, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		LockerService:  lockerService,
		InternalConfig: internalConfig,
		mutationLimiter: NewRateLimiter(
			internalConfig.App.MaxTimeRequestsPerSeconds,
			time.Second,
			time.Minute,
		),
	}
}
