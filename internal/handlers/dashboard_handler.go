package handlers

import (
	"net/http"
	"strconv"

	"recovery-backend/internal/services"

	"github.com/gorilla/mux"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

func NewDashboardHandler(s *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: s}
}

// writeRaw sends a pre-marshalled JSON payload (cached dashboards).
func writeRaw(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.CallStatCards(r.Context())
	if err != nil {
		http.Error(w, "Failed to load dashboard stats", http.StatusInternalServerError)
		return
	}
	writeRaw(w, data)
}

func (h *DashboardHandler) GetAdminStats(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.AdminStats(r.Context())
	if err != nil {
		http.Error(w, "Failed to load admin stats", http.StatusInternalServerError)
		return
	}
	writeRaw(w, data)
}

func (h *DashboardHandler) GetAgentStats(w http.ResponseWriter, r *http.Request) {
	agentID, _ := strconv.Atoi(mux.Vars(r)["officerId"])

	data, err := h.Service.AgentStats(r.Context(), agentID)
	if err != nil {
		http.Error(w, "Failed to load agent stats", http.StatusInternalServerError)
		return
	}
	writeRaw(w, data)
}

func (h *DashboardHandler) GetMarketingStats(w http.ResponseWriter, r *http.Request) {
	marketingID, _ := strconv.Atoi(mux.Vars(r)["marketingId"])

	data, err := h.Service.MarketingStats(r.Context(), marketingID)
	if err != nil {
		http.Error(w, "Failed to load marketing stats", http.StatusInternalServerError)
		return
	}
	writeRaw(w, data)
}

func (h *DashboardHandler) GetActivities(w http.ResponseWriter, r *http.Request) {
	feed, err := h.Service.RecentActivity(r.Context())
	if err != nil {
		http.Error(w, "Failed to load activities", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, feed)
}

func (h *DashboardHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.Service.WeeklyMetrics(r.Context())
	if err != nil {
		http.Error(w, "Failed to load metrics", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}
