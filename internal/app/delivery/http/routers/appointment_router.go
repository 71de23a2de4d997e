package routers

import (
	"clinic-portal-service/internal/app/delivery/http/controllers"
	"clinic-portal-service/internal/app/delivery/http/middlewares"
	"clinic-portal-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.With(middlewares.RequirePermission(constvars.PermissionDoctorsSearch)).Get("/available", appointmentController.SearchAvailableDoctors)
}

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.With(
		middlewares.RequirePermission(constvars.PermissionAppointmentsBook),
		middlewares.Idempotency,
	).Post("/", appointmentController.Book)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequirePermission(constvars.PermissionAppointmentsRead))
		r.Get("/", appointmentController.FindAll)
		r.Get("/{appointmentID}", appointmentController.FindByID)
		// ownership is checked by the usecase, so patients may cancel their own
		r.Post("/{appointmentID}/cancel", appointmentController.Cancel)
	})

	router.With(middlewares.RequirePermission(constvars.PermissionAppointmentsManage)).Put("/{appointmentID}/status", appointmentController.UpdateStatus)
}
