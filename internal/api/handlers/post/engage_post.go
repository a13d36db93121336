package post

import (
	"encoding/json"
	"net/http"

	"Pawhub/internal/api/handlers/common"
	"Pawhub/internal/api/middleware"
	"Pawhub/internal/core/engagement"
)

// EngageHandler handles like toggles and comments on posts
type EngageHandler struct {
	service engagement.Service
}

// NewEngageHandler creates a new engagement handler
func NewEngageHandler(service engagement.Service) *EngageHandler {
	return &EngageHandler{service: service}
}

// HandleToggleLike handles PUT /api/posts/{id}/like
// Toggling twice returns the post to its original like state.
func (h *EngageHandler) HandleToggleLike(w http.ResponseWriter, r *http.Request) {
	id, ok := common.URLParamInt64(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	actor := middleware.GetActor(r)

	post, err := h.service.ToggleLike(r.Context(), id, actor.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, post)
}

// HandleLikeState handles GET /api/posts/{id}/like
// Reports whether the acting user currently likes the post.
func (h *EngageHandler) HandleLikeState(w http.ResponseWriter, r *http.Request) {
	id, ok := common.URLParamInt64(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	actor := middleware.GetActor(r)

	liked, err := h.service.Liked(r.Context(), id, actor.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]bool{"liked": liked})
}

// AddCommentInput is the request body for POST /api/posts/{id}/comments
type AddCommentInput struct {
	Text string `json:"text"`
}

// HandleAddComment handles POST /api/posts/{id}/comments
func (h *EngageHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	id, ok := common.URLParamInt64(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 100*1024)

	var input AddCommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	actor := middleware.GetActor(r)

	post, err := h.service.AddComment(r.Context(), id, actor.ID, input.Text)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, post)
}

// HandleListComments handles GET /api/posts/{id}/comments
func (h *EngageHandler) HandleListComments(w http.ResponseWriter, r *http.Request) {
	id, ok := common.URLParamInt64(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	comments, err := h.service.ListComments(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if comments == nil {
		comments = []*engagement.Comment{}
	}
	common.WriteJSON(w, http.StatusOK, comments)
}
