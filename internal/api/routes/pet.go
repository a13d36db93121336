package routes

import (
	"Pawhub/internal/api/handlers/pet"
	"Pawhub/internal/api/middleware"
	"Pawhub/internal/core/pets"

	"github.com/go-chi/chi/v5"
)

// RegisterPetRoutes registers pet registry endpoints on the router
func RegisterPetRoutes(r chi.Router, service pets.Service, actor *middleware.ActorMiddleware) {
	handler := pet.NewHandler(service)

	r.Route("/api/pets", func(r chi.Router) {
		r.With(actor.RequireActor).Get("/", handler.HandleListMine)
		r.Get("/{id}", handler.HandleGet)
	})
}
