package post

import (
	"encoding/json"
	"net/http"

	"Pawhub/internal/api/handlers/common"
	"Pawhub/internal/api/middleware"
	"Pawhub/internal/core/posts"
)

// UpdateHandler handles post edits and deletion
type UpdateHandler struct {
	service posts.Service
}

// NewUpdateHandler creates a new handler for editing posts
func NewUpdateHandler(service posts.Service) *UpdateHandler {
	return &UpdateHandler{service: service}
}

// UpdatePostInput is the request body for PUT /api/posts/{id}
type UpdatePostInput struct {
	Category *string `json:"category,omitempty"`
	Title    string  `json:"title"`
	Content  string  `json:"content"`
}

// HandleUpdate handles PUT /api/posts/{id}. Author only.
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := common.URLParamInt64(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 100*1024)

	var input UpdatePostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	actor := middleware.GetActor(r)

	updated, err := h.service.Update(r.Context(), id, actor.ID, posts.UpdateRequest{
		Title:    input.Title,
		Content:  input.Content,
		Category: input.Category,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /api/posts/{id}. Author or moderator.
func (h *UpdateHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := common.URLParamInt64(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	actor := middleware.GetActor(r)

	if err := h.service.Delete(r.Context(), id, actor.ID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
