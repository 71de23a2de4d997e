package routers

import (
	"clinic-portal-service/internal/app/config"
	"clinic-portal-service/internal/app/delivery/http/controllers"
	"clinic-portal-service/internal/app/delivery/http/middlewares"
	"clinic-portal-service/internal/pkg/constvars"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Controllers struct {
	Auth        *controllers.AuthController
	Appointment *controllers.AppointmentController
	Workflow    *controllers.WorkflowController
	Reference   *controllers.ReferenceController
	Audit       *controllers.AuditController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	loginRateLimiter *middlewares.RateLimiter,
	controllers *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{internalConfig.App.FrontendDomain},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderIdempotencyKey, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderRedirectTo, constvars.HeaderXRequestID, constvars.HeaderIdempotentHit},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.GlobalRateLimit())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	bodyLimit := int64(internalConfig.App.RequestBodyLimitInMegabyte) * 1024 * 1024
	if bodyLimit > 0 {
		router.Use(middlewares.BodyLimit(bodyLimit))
	}

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, loginRateLimiter, controllers.Auth)
			})

			r.Group(func(r chi.Router) {
				r.Use(middlewares.Authenticate)

				r.Route("/doctors", func(r chi.Router) {
					attachDoctorRoutes(r, middlewares, controllers.Appointment)
				})

				r.Route("/appointments", func(r chi.Router) {
					attachAppointmentRoutes(r, middlewares, controllers.Appointment)
				})

				r.Route("/workflows", func(r chi.Router) {
					attachWorkflowRoutes(r, middlewares, controllers.Workflow)
				})

				r.Route("/references", func(r chi.Router) {
					attachReferenceRoutes(r, middlewares, controllers.Reference)
				})

				r.Route("/audit-events", func(r chi.Router) {
					attachAuditRoutes(r, middlewares, controllers.Audit)
				})
			})
		})
	})
}

// NewLoginRateLimiter builds the per-IP limiter guarding the login endpoint.
func NewLoginRateLimiter(internalConfig *config.InternalConfig, mw *middlewares.Middlewares) *middlewares.RateLimiter {
	attempts := internalConfig.App.LoginMaxAttemptsPerMinute
	if attempts <= 0 {
		attempts = 5
	}
	blockTime := time.Duration(internalConfig.App.LoginBlockTimeInMinutes) * time.Minute
	return middlewares.NewRateLimiter(attempts, time.Minute, blockTime, mw.Log)
}
