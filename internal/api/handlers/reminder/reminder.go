package reminder

import (
	"encoding/json"
	"net/http"
	"time"

	"Pawhub/internal/api/handlers/common"
	"Pawhub/internal/core/reminders"
)

// Handler handles pet care reminder scheduling
type Handler struct {
	service reminders.Service
}

// NewHandler creates a new reminder handler
func NewHandler(service reminders.Service) *Handler {
	return &Handler{service: service}
}

// CreateReminderInput is the request body for POST /api/reminders.
// Date is a calendar day in YYYY-MM-DD form; the reminder falls due at
// midnight UTC on that day.
type CreateReminderInput struct {
	Title      string `json:"title"`
	Type       string `json:"type"`
	Date       string `json:"date"`
	Recurrence string `json:"recurrence,omitempty"`
	PetID      int64  `json:"petId"`
}

// HandleCreate handles POST /api/reminders
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 100*1024)

	var input CreateReminderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	dueAt, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest",
			"Invalid date, expected YYYY-MM-DD")
		return
	}

	reminder, err := h.service.Create(r.Context(), reminders.CreateRequest{
		Title:      input.Title,
		Type:       input.Type,
		DueAt:      dueAt,
		Recurrence: reminders.Recurrence(input.Recurrence),
		PetID:      input.PetID,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, reminder)
}

// HandleToggle handles PUT /api/reminders/{id}/toggle. Completing a
// recurring reminder also creates the next occurrence.
func (h *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	id, ok := common.URLParamInt64(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid reminder id")
		return
	}

	reminder, err := h.service.ToggleCompletion(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, reminder)
}

// HandleListByPet handles GET /api/reminders/pet/{petId}
func (h *Handler) HandleListByPet(w http.ResponseWriter, r *http.Request) {
	petID, ok := common.URLParamInt64(r, "petId")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid pet id")
		return
	}

	result, err := h.service.ListByPet(r.Context(), petID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if result == nil {
		result = []*reminders.Reminder{}
	}
	common.WriteJSON(w, http.StatusOK, result)
}

// HandleDelete handles DELETE /api/reminders/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := common.URLParamInt64(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid reminder id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
