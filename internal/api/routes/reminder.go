package routes

import (
	"Pawhub/internal/api/handlers/reminder"
	"Pawhub/internal/api/middleware"
	"Pawhub/internal/core/reminders"

	"github.com/go-chi/chi/v5"
)

// RegisterReminderRoutes registers pet care reminder endpoints on the router
func RegisterReminderRoutes(r chi.Router, service reminders.Service, actor *middleware.ActorMiddleware) {
	handler := reminder.NewHandler(service)

	r.Route("/api/reminders", func(r chi.Router) {
		r.Use(actor.RequireActor)

		r.Post("/", handler.HandleCreate)
		r.Get("/pet/{petId}", handler.HandleListByPet)
		r.Put("/{id}/toggle", handler.HandleToggle)
		r.Delete("/{id}", handler.HandleDelete)
	})
}
