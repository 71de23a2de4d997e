package routers

import (
	"clinic-portal-service/internal/app/delivery/http/controllers"
	"clinic-portal-service/internal/app/delivery/http/middlewares"
	"clinic-portal-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachWorkflowRoutes(router chi.Router, middlewares *middlewares.Middlewares, workflowController *controllers.WorkflowController) {
	router.Use(middlewares.RequirePermission(constvars.PermissionWorkflowRun))

	router.Post("/", workflowController.Start)
	router.Route("/{workflowID}", func(r chi.Router) {
		r.Get("/", workflowController.Get)
		r.Delete("/", workflowController.Abandon)
		r.Post("/test-result", workflowController.RecordTestResult)
		r.Get("/regimens", workflowController.ListStandardRegimens)
		r.Get("/components", workflowController.ListActiveComponents)
		r.Post("/regimen", workflowController.SelectRegimen)
		r.With(middlewares.Idempotency).Post("/treatment", workflowController.CreateTreatment)
	})
}
