package post

import (
	"net/http"

	"Pawhub/internal/api/handlers/common"
	"Pawhub/internal/api/middleware"
	"Pawhub/internal/core/posts"
	"Pawhub/internal/core/users"
)

// ListHandler handles post listing and retrieval
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new handler for listing posts
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList handles GET /api/posts?sort=newest|popular|hot|views
// Anonymous callers see only approved posts; a resolved actor also sees their
// own posts regardless of moderation status.
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	var callerID *int64
	if actor := middleware.GetActor(r); actor != nil {
		callerID = &actor.ID
	}

	result, err := h.service.ListVisible(r.Context(), callerID, r.URL.Query().Get("sort"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if result == nil {
		result = []*posts.Post{}
	}
	common.WriteJSON(w, http.StatusOK, result)
}

// HandleGet handles GET /api/posts/{id}
func (h *ListHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := common.URLParamInt64(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	post, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, post)
}

// HandleListByAuthor handles GET /api/posts/user/{userId}
func (h *ListHandler) HandleListByAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, ok := common.URLParamInt64(r, "userId")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid user id")
		return
	}

	result, err := h.service.ListByAuthor(r.Context(), authorID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if result == nil {
		result = []*posts.Post{}
	}
	common.WriteJSON(w, http.StatusOK, result)
}

// HandleListPending handles GET /api/posts/pending (moderation queue).
// Moderator only.
func (h *ListHandler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r)
	if !users.CanModerate(actor) {
		common.WriteError(w, http.StatusForbidden, "Forbidden", "Moderator role required")
		return
	}

	result, err := h.service.ListPending(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if result == nil {
		result = []*posts.Post{}
	}
	common.WriteJSON(w, http.StatusOK, result)
}

// HandleRecordView handles PUT /api/posts/{id}/view
func (h *ListHandler) HandleRecordView(w http.ResponseWriter, r *http.Request) {
	id, ok := common.URLParamInt64(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	post, err := h.service.RecordView(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, post)
}
