package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"recovery-backend/internal/models"
	"recovery-backend/internal/services"

	"github.com/gorilla/mux"
)

type FollowupHandler struct {
	Service *services.FollowupService
}

func NewFollowupHandler(s *services.FollowupService) *FollowupHandler {
	return &FollowupHandler{Service: s}
}

func (h *FollowupHandler) CreateFollowup(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFollowupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	f, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, f)
}

func (h *FollowupHandler) ListFollowups(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	followups, err := h.Service.List(r.Context(), q.Get("status"), q.Get("phone"))
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, followups)
}

func (h *FollowupHandler) UpdateFollowup(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateFollowupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	f, err := h.Service.Update(r.Context(), id, &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (h *FollowupHandler) DeleteFollowup(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.Delete(r.Context(), id); err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "followup deleted"})
}
