package pet

import (
	"log"
	"net/http"

	"Pawhub/internal/api/handlers/common"
	"Pawhub/internal/api/middleware"
	"Pawhub/internal/core/pets"
)

// Handler serves pet registry lookups
type Handler struct {
	service pets.Service
}

// NewHandler creates a new pet handler
func NewHandler(service pets.Service) *Handler {
	return &Handler{service: service}
}

// HandleGet handles GET /api/pets/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := common.URLParamInt64(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid pet id")
		return
	}

	pet, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, pet)
}

// HandleListMine handles GET /api/pets, listing the actor's own pets
func (h *Handler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r)

	result, err := h.service.ListByOwner(r.Context(), actor.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if result == nil {
		result = []*pets.Pet{}
	}
	common.WriteJSON(w, http.StatusOK, result)
}

// handleServiceError maps pet service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case pets.IsNotFound(err):
		common.WriteError(w, http.StatusNotFound, "NotFound", err.Error())

	default:
		log.Printf("Unexpected error in pet handler: %v", err)
		common.WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
