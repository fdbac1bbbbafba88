package routers

import (
	"health-records-service/internal/app/delivery/http/controllers"
	"health-records-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	if middlewares.LoginLimiter != nil {
		router.With(middlewares.LoginLimiter.Limit).Post("/login", authController.Login)
		return
	}
	router.Post("/login", authController.Login)
}
