package routes

import (
	"Pawhub/internal/api/handlers/report"
	"Pawhub/internal/api/middleware"
	"Pawhub/internal/core/reports"

	"github.com/go-chi/chi/v5"
)

// RegisterReportRoutes registers abuse report endpoints on the router.
// Every route requires a resolved actor; triage routes additionally check
// the moderator role in the handler.
func RegisterReportRoutes(r chi.Router, service reports.Service, actor *middleware.ActorMiddleware) {
	handler := report.NewHandler(service)

	r.Route("/api/reports", func(r chi.Router) {
		r.Use(actor.RequireActor)

		r.Post("/", handler.HandleFile)
		r.Get("/", handler.HandleList)
		r.Get("/post/{postId}", handler.HandleListByPost)
		r.Put("/{id}/review", handler.HandleReview)
		r.Delete("/{id}", handler.HandleDelete)
	})
}
