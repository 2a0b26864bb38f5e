package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"recovery-backend/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// serviceError maps service failures onto HTTP statuses: missing rows
// become 404, infrastructure faults a generic 500, and everything else
// a service reports is a 400 with the service's message.
func serviceError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrNotFound) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, services.ErrInternal) {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}
