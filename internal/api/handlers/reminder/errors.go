package reminder

import (
	"log"
	"net/http"

	"Pawhub/internal/api/handlers/common"
	"Pawhub/internal/core/reminders"
)

// handleServiceError maps reminder service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case reminders.IsNotFound(err):
		common.WriteError(w, http.StatusNotFound, "NotFound", err.Error())

	case reminders.IsValidationError(err):
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	default:
		log.Printf("Unexpected error in reminder handler: %v", err)
		common.WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
