package routers

import (
	"health-records-service/internal/app/config"
	"health-records-service/internal/app/delivery/http/controllers"
	"health-records-service/internal/app/delivery/http/middlewares"
	"health-records-service/internal/pkg/constvars"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	homeController *controllers.HomeController,
	authController *controllers.AuthController,
	doctorController *controllers.DoctorController,
	patientController *controllers.PatientController,
) {
	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			constvars.MethodGet,
			constvars.MethodPost,
			constvars.MethodPut,
			constvars.MethodDelete,
			constvars.MethodOptions,
		},
		AllowedHeaders: []string{
			constvars.HeaderAccept,
			constvars.HeaderAuthorization,
			constvars.HeaderContentType,
			constvars.HeaderXCSRFToken,
			constvars.HeaderXRequestID,
		},
		ExposedHeaders: []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		MaxAge:         300,
	}
	router.Use(cors.Handler(corsOptions))

	if internalConfig.App.MaxRequests > 0 {
		router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	}

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	if middlewares.Metrics != nil {
		router.Use(middlewares.RecordMetrics)
	}
	router.Use(middlewares.ErrorHandler)

	router.Get("/", homeController.Index)
	if middlewares.Metrics != nil {
		router.Method(constvars.MethodGet, "/metrics", middlewares.Metrics.Handler())
	}

	attachAuthRoutes(router, middlewares, authController)

	router.Route("/doctors", func(r chi.Router) {
		attachDoctorRoutes(r, doctorController, patientController)
	})

	router.Route("/patients", func(r chi.Router) {
		attachPatientRoutes(r, patientController)
	})
}
