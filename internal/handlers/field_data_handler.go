package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"recovery-backend/internal/models"
	"recovery-backend/internal/services"

	"github.com/gorilla/mux"
)

type FieldDataHandler struct {
	Service *services.FieldDataService
}

func NewFieldDataHandler(s *services.FieldDataService) *FieldDataHandler {
	return &FieldDataHandler{Service: s}
}

func (h *FieldDataHandler) CreateFieldData(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFieldDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	fd, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, fd)
}

func (h *FieldDataHandler) ListFieldData(w http.ResponseWriter, r *http.Request) {
	marketingID, _ := strconv.Atoi(r.URL.Query().Get("marketingId"))

	records, err := h.Service.List(r.Context(), marketingID)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *FieldDataHandler) DeleteFieldData(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.Delete(r.Context(), id); err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "field data deleted"})
}
