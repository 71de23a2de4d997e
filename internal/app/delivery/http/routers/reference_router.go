package routers

import (
	"clinic-portal-service/internal/app/delivery/http/controllers"
	"clinic-portal-service/internal/app/delivery/http/middlewares"
	"clinic-portal-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachReferenceRoutes(router chi.Router, middlewares *middlewares.Middlewares, referenceController *controllers.ReferenceController) {
	router.With(middlewares.RequirePermission(constvars.PermissionReferencesManage)).
		Post("/certificates/{id}/image", referenceController.UploadCertificateImage)

	router.Route("/{resource}", func(r chi.Router) {
		r.Use(middlewares.RequireReferencePermission)
		r.Get("/", referenceController.List)
		r.Post("/", referenceController.Create)
		r.Get("/{id}", referenceController.Get)
		r.Put("/{id}", referenceController.Update)
		r.Delete("/{id}", referenceController.Delete)
	})
}
