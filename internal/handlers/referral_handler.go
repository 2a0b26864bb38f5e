package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"recovery-backend/internal/models"
	"recovery-backend/internal/services"

	"github.com/gorilla/mux"
)

type ReferralHandler struct {
	Service *services.ReferralService
}

func NewReferralHandler(s *services.ReferralService) *ReferralHandler {
	return &ReferralHandler{Service: s}
}

func (h *ReferralHandler) CreateReferral(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReferralRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ref, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ref)
}

func (h *ReferralHandler) ListReferrals(w http.ResponseWriter, r *http.Request) {
	referrals, err := h.Service.List(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, referrals)
}

func (h *ReferralHandler) DeleteReferral(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.Delete(r.Context(), id); err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "referral deleted"})
}
