package notification

import (
	"net/http"

	"Pawhub/internal/api/handlers/common"
	"Pawhub/internal/api/middleware"
	"Pawhub/internal/core/notifications"
)

// Handler serves a user's notification inbox. The list routes read the
// actor's inbox; the per-notification routes address notifications by id
// without checking who owns them.
type Handler struct {
	service notifications.Service
}

// NewHandler creates a new notification handler
func NewHandler(service notifications.Service) *Handler {
	return &Handler{service: service}
}

// HandleList handles GET /api/notifications?unread=true
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r)

	var (
		result []*notifications.Notification
		err    error
	)
	if r.URL.Query().Get("unread") == "true" {
		result, err = h.service.ListUnread(r.Context(), actor.ID)
	} else {
		result, err = h.service.ListForUser(r.Context(), actor.ID)
	}
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if result == nil {
		result = []*notifications.Notification{}
	}
	common.WriteJSON(w, http.StatusOK, result)
}

// HandleUnreadCount handles GET /api/notifications/unread-count
func (h *Handler) HandleUnreadCount(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r)

	count, err := h.service.UnreadCount(r.Context(), actor.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]int{"count": count})
}

// HandleMarkRead handles PUT /api/notifications/{id}/read
func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := common.URLParamInt64(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid notification id")
		return
	}

	n, err := h.service.MarkRead(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, n)
}

// HandleMarkAllRead handles PUT /api/notifications/read-all
func (h *Handler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r)

	if err := h.service.MarkAllRead(r.Context(), actor.ID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete handles DELETE /api/notifications/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := common.URLParamInt64(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid notification id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
