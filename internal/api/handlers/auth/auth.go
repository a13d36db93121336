package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Pawhub/internal/api/handlers/common"
	"Pawhub/internal/core/users"
)

// Handler handles account registration and credential verification
type Handler struct {
	service users.Service
}

// NewHandler creates a new auth handler
func NewHandler(service users.Service) *Handler {
	return &Handler{service: service}
}

// HandleRegister handles POST /api/auth/register
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 100*1024)

	var req users.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, user)
}

// HandleLogin handles POST /api/auth/login. Returns the matching user;
// clients pass the returned id as X-Actor-ID on subsequent requests.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 100*1024)

	var req users.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	user, err := h.service.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, user)
}

// handleServiceError maps user service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case users.IsValidationError(err):
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	case errors.Is(err, users.ErrInvalidCredentials):
		common.WriteError(w, http.StatusUnauthorized, "Unauthorized", "Invalid email or password")

	case errors.Is(err, users.ErrEmailTaken):
		common.WriteError(w, http.StatusConflict, "Duplicate", err.Error())

	case users.IsNotFound(err):
		common.WriteError(w, http.StatusNotFound, "NotFound", err.Error())

	default:
		log.Printf("Unexpected error in auth handler: %v", err)
		common.WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
