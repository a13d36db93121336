package notification

import (
	"log"
	"net/http"

	"Pawhub/internal/api/handlers/common"
	"Pawhub/internal/core/notifications"
)

// handleServiceError maps notification service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case notifications.IsNotFound(err):
		common.WriteError(w, http.StatusNotFound, "NotFound", err.Error())

	case notifications.IsValidationError(err):
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	default:
		log.Printf("Unexpected error in notification handler: %v", err)
		common.WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
