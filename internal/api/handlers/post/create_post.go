package post

import (
	"encoding/json"
	"net/http"

	"Pawhub/internal/api/handlers/common"
	"Pawhub/internal/api/middleware"
	"Pawhub/internal/core/posts"
)

// CreateHandler handles post submission
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new handler for submitting posts
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// CreatePostInput is the request body for POST /api/posts
type CreatePostInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category,omitempty"`
}

// HandleCreate handles POST /api/posts
// The actor becomes the author; moderator submissions are auto-approved.
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 100*1024)

	var input CreatePostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	actor := middleware.GetActor(r)

	created, err := h.service.Submit(r.Context(), posts.SubmitRequest{
		Title:    input.Title,
		Content:  input.Content,
		Category: input.Category,
		AuthorID: actor.ID,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, created)
}
