package report

import (
	"log"
	"net/http"

	"Pawhub/internal/api/handlers/common"
	"Pawhub/internal/core/reports"
)

// handleServiceError maps report service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case reports.IsNotFound(err):
		common.WriteError(w, http.StatusNotFound, "NotFound", err.Error())

	case reports.IsConflict(err):
		common.WriteError(w, http.StatusConflict, "Duplicate", err.Error())

	case reports.IsValidationError(err):
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	default:
		log.Printf("Unexpected error in report handler: %v", err)
		common.WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
