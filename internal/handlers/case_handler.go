package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"recovery-backend/internal/middleware"
	"recovery-backend/internal/models"
	"recovery-backend/internal/services"
	"recovery-backend/internal/storage"

	"github.com/gorilla/mux"
)

var documentFields = []string{"aadhaar", "pan", "accountStatement", "paymentProof"}

type CaseHandler struct {
	Service  *services.CaseService
	Uploader *storage.Uploader
}

func NewCaseHandler(s *services.CaseService, u *storage.Uploader) *CaseHandler {
	return &CaseHandler{Service: s, Uploader: u}
}

func (h *CaseHandler) CreateCase(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cs, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, cs)
}

func (h *CaseHandler) GetCase(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	cs, err := h.Service.Get(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cs)
}

func (h *CaseHandler) ListCases(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.CaseFilter{
		Status: models.CaseStatus(q.Get("status")),
	}
	filter.AssignedTo, _ = strconv.Atoi(q.Get("assignedTo"))
	filter.TelecallerID, _ = strconv.Atoi(q.Get("telecallerId"))

	cases, err := h.Service.List(r.Context(), filter)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cases)
}

func (h *CaseHandler) UpdateCase(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.UpdateCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cs, err := h.Service.Update(r.Context(), id, &req)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cs)
}

func (h *CaseHandler) DeleteCase(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.Delete(r.Context(), id); err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "case deleted"})
}

func (h *CaseHandler) AssignCase(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.AssignCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	assignedBy, _ := middleware.GetEmailFromContext(r.Context())
	cs, err := h.Service.Assign(r.Context(), id, &req, assignedBy)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cs)
}

func (h *CaseHandler) CompleteCase(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.CompleteCaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	completedBy, _ := middleware.GetEmailFromContext(r.Context())
	cs, err := h.Service.Complete(r.Context(), id, &req, completedBy)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cs)
}

func (h *CaseHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req models.AddNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	addedBy, _ := middleware.GetEmailFromContext(r.Context())
	note, err := h.Service.AddNote(r.Context(), id, req.Content, addedBy)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

func (h *CaseHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	notes, err := h.Service.ListNotes(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

// UploadDocuments accepts a multipart form with any of the document
// fields and stores each file, recording the filename on the case.
func (h *CaseHandler) UploadDocuments(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := r.ParseMultipartForm(h.Uploader.MaxBytes); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	stored := make(map[string]string)
	for _, field := range documentFields {
		file, header, err := r.FormFile(field)
		if err != nil {
			continue // field not present
		}

		filename, err := h.Uploader.Save(field, file, header)
		file.Close()
		if err != nil {
			if errors.Is(err, storage.ErrFileTooLarge) || errors.Is(err, storage.ErrBadExtension) {
				http.Error(w, field+": "+err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "Failed to store file", http.StatusInternalServerError)
			return
		}

		if err := h.Service.AttachDocument(r.Context(), id, field, filename); err != nil {
			serviceError(w, err)
			return
		}
		stored[field] = filename
	}

	if len(stored) == 0 {
		http.Error(w, "No document files in request", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, stored)
}
