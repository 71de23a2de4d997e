package routers

import (
	"clinic-portal-service/internal/app/delivery/http/controllers"
	"clinic-portal-service/internal/app/delivery/http/middlewares"
	"clinic-portal-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAuditRoutes(router chi.Router, middlewares *middlewares.Middlewares, auditController *controllers.AuditController) {
	router.With(middlewares.RequirePermission(constvars.PermissionAccountsManage)).Get("/", auditController.FindRecent)
}
