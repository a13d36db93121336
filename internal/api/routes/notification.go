package routes

import (
	"Pawhub/internal/api/handlers/notification"
	"Pawhub/internal/api/middleware"
	"Pawhub/internal/core/notifications"

	"github.com/go-chi/chi/v5"
)

// RegisterNotificationRoutes registers notification inbox endpoints on the
// router. All routes act on the resolved actor's own inbox.
func RegisterNotificationRoutes(r chi.Router, service notifications.Service, actor *middleware.ActorMiddleware) {
	handler := notification.NewHandler(service)

	r.Route("/api/notifications", func(r chi.Router) {
		r.Use(actor.RequireActor)

		r.Get("/", handler.HandleList)
		r.Get("/unread-count", handler.HandleUnreadCount)
		r.Put("/read-all", handler.HandleMarkAllRead)
		r.Put("/{id}/read", handler.HandleMarkRead)
		r.Delete("/{id}", handler.HandleDelete)
	})
}
