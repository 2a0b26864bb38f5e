package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"recovery-backend/internal/middleware"
	"recovery-backend/internal/models"
	"recovery-backend/internal/services"

	"github.com/gorilla/mux"
)

type OfferHandler struct {
	Service *services.OfferService
}

func NewOfferHandler(s *services.OfferService) *OfferHandler {
	return &OfferHandler{Service: s}
}

func (h *OfferHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	agentID, _ := middleware.GetUserIDFromContext(r.Context())
	offer, err := h.Service.Create(r.Context(), agentID, &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, offer)
}

func (h *OfferHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	// Admins see every offer; agents see their own.
	role, _ := middleware.GetRoleFromContext(r.Context())
	agentID := 0
	if role != models.RoleAdmin {
		agentID, _ = middleware.GetUserIDFromContext(r.Context())
	}

	offers, err := h.Service.List(r.Context(), agentID)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, offers)
}

func (h *OfferHandler) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	agentID, _ := middleware.GetUserIDFromContext(r.Context())
	offer, err := h.Service.Update(r.Context(), id, agentID, &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, offer)
}

// DeleteOffer removes an offer. Admins may delete any offer; agents
// only the ones they raised.
func (h *OfferHandler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var err error
	if role, _ := middleware.GetRoleFromContext(r.Context()); role == models.RoleAdmin {
		err = h.Service.DeleteAny(r.Context(), id)
	} else {
		agentID, _ := middleware.GetUserIDFromContext(r.Context())
		err = h.Service.Delete(r.Context(), id, agentID)
	}
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "offer deleted"})
}
