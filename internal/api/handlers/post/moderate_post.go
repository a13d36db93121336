package post

import (
	"fmt"
	"log"
	"net/http"

	"Pawhub/internal/api/handlers/common"
	"Pawhub/internal/api/middleware"
	"Pawhub/internal/core/notifications"
	"Pawhub/internal/core/posts"
	"Pawhub/internal/core/users"
)

// ModerateHandler handles approve/reject decisions on pending posts
type ModerateHandler struct {
	service  posts.Service
	notifier notifications.Service
}

// NewModerateHandler creates a new moderation handler. notifier may be nil,
// in which case no POST_APPROVED notifications are emitted.
func NewModerateHandler(service posts.Service, notifier notifications.Service) *ModerateHandler {
	return &ModerateHandler{service: service, notifier: notifier}
}

// HandleApprove handles PUT /api/posts/{id}/approve
func (h *ModerateHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, true)
}

// HandleReject handles PUT /api/posts/{id}/reject
func (h *ModerateHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, false)
}

func (h *ModerateHandler) decide(w http.ResponseWriter, r *http.Request, approve bool) {
	id, ok := common.URLParamInt64(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	actor := middleware.GetActor(r)
	if !users.CanModerate(actor) {
		common.WriteError(w, http.StatusForbidden, "Forbidden", "Moderator role required")
		return
	}

	var (
		post *posts.Post
		err  error
	)
	if approve {
		post, err = h.service.Approve(r.Context(), id)
	} else {
		post, err = h.service.Reject(r.Context(), id)
	}
	if err != nil {
		handleServiceError(w, err)
		return
	}

	// Seam to the notification sink: tell the author their post went live.
	// Best effort, outside the moderation write.
	if approve && h.notifier != nil && post.Status == posts.StatusApproved {
		link := fmt.Sprintf("/posts/%d", post.ID)
		_, nerr := h.notifier.Notify(r.Context(), post.AuthorID,
			fmt.Sprintf("Your post %q was approved", post.Title),
			notifications.TypePostApproved, &link)
		if nerr != nil {
			log.Printf("Failed to notify author of approval: %v", nerr)
		}
	}

	common.WriteJSON(w, http.StatusOK, post)
}
