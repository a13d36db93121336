package routes

import (
	"Pawhub/internal/api/handlers/auth"
	"Pawhub/internal/core/users"

	"github.com/go-chi/chi/v5"
)

// RegisterAuthRoutes registers registration and login endpoints on the router
func RegisterAuthRoutes(r chi.Router, service users.Service) {
	handler := auth.NewHandler(service)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", handler.HandleRegister)
		r.Post("/login", handler.HandleLogin)
	})
}
