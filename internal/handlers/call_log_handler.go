package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"recovery-backend/internal/models"
	"recovery-backend/internal/services"
)

type CallLogHandler struct {
	Service *services.CallLogService
}

func NewCallLogHandler(s *services.CallLogService) *CallLogHandler {
	return &CallLogHandler{Service: s}
}

func (h *CallLogHandler) CreateCallLog(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCallLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cl, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, cl)
}

// ListCallLogs returns recent calls, newest first. A ?since=RFC3339
// parameter switches to every call from that instant on, oldest first.
func (h *CallLogHandler) ListCallLogs(w http.ResponseWriter, r *http.Request) {
	if since := r.URL.Query().Get("since"); since != "" {
		at, err := time.Parse(time.RFC3339, since)
		if err != nil {
			http.Error(w, "since must be an RFC3339 timestamp", http.StatusBadRequest)
			return
		}
		logs, err := h.Service.ListSince(r.Context(), at)
		if err != nil {
			serviceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, logs)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, err := h.Service.List(r.Context(), limit)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}
