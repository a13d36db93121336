package post

import (
	"log"
	"net/http"

	"Pawhub/internal/api/handlers/common"
	"Pawhub/internal/core/engagement"
	"Pawhub/internal/core/posts"
)

// handleServiceError maps post/engagement service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case posts.IsNotFound(err), engagement.IsNotFound(err):
		common.WriteError(w, http.StatusNotFound, "NotFound", err.Error())

	case posts.IsForbidden(err):
		common.WriteError(w, http.StatusForbidden, "Forbidden", err.Error())

	case posts.IsValidationError(err), engagement.IsValidationError(err):
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in post handler: %v", err)
		common.WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
