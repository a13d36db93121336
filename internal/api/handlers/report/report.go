package report

import (
	"encoding/json"
	"net/http"

	"Pawhub/internal/api/handlers/common"
	"Pawhub/internal/api/middleware"
	"Pawhub/internal/core/reports"
	"Pawhub/internal/core/users"
)

// Handler handles abuse report intake and triage
type Handler struct {
	service reports.Service
}

// NewHandler creates a new report handler
func NewHandler(service reports.Service) *Handler {
	return &Handler{service: service}
}

// FileReportInput is the request body for POST /api/reports
type FileReportInput struct {
	Reason      string `json:"reason"`
	Description string `json:"description,omitempty"`
	PostID      int64  `json:"postId"`
}

// HandleFile handles POST /api/reports. The actor is the reporter.
func (h *Handler) HandleFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 100*1024)

	var input FileReportInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	actor := middleware.GetActor(r)

	report, err := h.service.File(r.Context(), input.PostID, actor.ID, input.Reason, input.Description)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, report)
}

// ReviewInput is the request body for PUT /api/reports/{id}/review
type ReviewInput struct {
	Action string `json:"action"`
}

// HandleReview handles PUT /api/reports/{id}/review. Moderator only; the
// actor is stamped as the reviewer.
func (h *Handler) HandleReview(w http.ResponseWriter, r *http.Request) {
	id, ok := common.URLParamInt64(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid report id")
		return
	}

	actor := middleware.GetActor(r)
	if !users.CanModerate(actor) {
		common.WriteError(w, http.StatusForbidden, "Forbidden", "Moderator role required")
		return
	}

	var input ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	report, err := h.service.Review(r.Context(), id, actor.ID, input.Action)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, report)
}

// HandleList handles GET /api/reports?status=pending|reviewed|dismissed|all
// Moderator only. Defaults to the pending queue.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r)
	if !users.CanModerate(actor) {
		common.WriteError(w, http.StatusForbidden, "Forbidden", "Moderator role required")
		return
	}

	result, err := h.service.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if result == nil {
		result = []*reports.Report{}
	}
	common.WriteJSON(w, http.StatusOK, result)
}

// HandleListByPost handles GET /api/reports/post/{postId}
func (h *Handler) HandleListByPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := common.URLParamInt64(r, "postId")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	result, err := h.service.ListByPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if result == nil {
		result = []*reports.Report{}
	}
	common.WriteJSON(w, http.StatusOK, result)
}

// HandleDelete handles DELETE /api/reports/{id}. Moderator only.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := common.URLParamInt64(r, "id")
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid report id")
		return
	}

	actor := middleware.GetActor(r)
	if !users.CanModerate(actor) {
		common.WriteError(w, http.StatusForbidden, "Forbidden", "Moderator role required")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
