package routers

import (
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/delivery/http/controllers"
	"mediconnect-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, internalConfig *config.InternalConfig, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	loginLimiter := newLoginLimiter(internalConfig, middlewares)

	router.Post("/register", authController.Register)
	router.With(loginLimiter.Limit).Post("/login", authController.Login)
}

func newLoginLimiter(internalConfig *config.InternalConfig, m *middlewares.Middlewares) *middlewares.RateLimiter {
	blockTime := time.Duration(internalConfig.App.LoginBlockTimeInMinutes) * time.Minute
	return middlewares.NewLoginRateLimiter(m.Log, internalConfig.App.LoginMaxRequestsPerMinute, blockTime)
}
