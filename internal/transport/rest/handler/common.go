package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"formlab/internal/model"
	"formlab/internal/service"
)

// Helper functions shared by all handlers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// writeServiceError maps service errors to HTTP statuses: validation
// failures to 400 (message plus the full issue list keyed by question
// position), missing ids to 404, everything else to 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"message": vErr.Error(),
			"errors":  vErr.Issues,
		})
	case errors.Is(err, service.ErrFormNotFound):
		writeError(w, http.StatusNotFound, "Form not found")
	case errors.Is(err, service.ErrDraftNotFound):
		writeError(w, http.StatusNotFound, "Draft not found")
	case errors.Is(err, service.ErrResponseNotFound):
		writeError(w, http.StatusNotFound, "Response not found")
	case errors.Is(err, model.ErrIndexOutOfRange):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
