package middlewares

import (
	"health-records-service/internal/app/config"
	"health-records-service/internal/pkg/metrics"
	"time"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	Metrics        *metrics.Metrics
	LoginLimiter   *RateLimiter
}

// NewMiddlewares builds the login limiter only when AUTH_LOGIN_MAX_ATTEMPTS
// is set.
func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig, appMetrics *metrics.Metrics) *Middlewares {
	m := &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
		Metrics:        appMetrics,
	}

	auth := internalConfig.Auth
	if auth.LoginMaxAttempts > 0 {
		m.LoginLimiter = NewRateLimiter(
			logger,
			auth.LoginMaxAttempts,
			time.Duration(auth.LoginWindowInSeconds)*time.Second,
			time.Duration(auth.LoginBlockInSeconds)*time.Second,
		)
	}
	return m
}
