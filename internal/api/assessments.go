package api

import (
	"net/http"

	"github.com/vcfready/vcfready/internal/assessment"
)

type createAssessmentRequest struct {
	Customer string `json:"customer"`
	PathID   string `json:"path_id"`
}

type changePathRequest struct {
	PathID string `json:"path_id"`
}

type answerRequest struct {
	Answer string `json:"answer"`
}

type notesRequest struct {
	Notes string `json:"notes"`
}

func (h *Handler) handleCreateAssessment(w http.ResponseWriter, r *http.Request) {
	var req createAssessmentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.PathID == "" {
		writeError(w, http.StatusBadRequest, "path_id is required")
		return
	}
	a, err := h.svc.Start(r.Context(), req.Customer, req.PathID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (h *Handler) handleListAssessments(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	if list == nil {
		list = []*assessment.Assessment{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleGetAssessment(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// handleResetAssessment handles DELETE /api/v1/assessments/{id}. The
// session is kept; its path and answers are discarded.
func (h *Handler) handleResetAssessment(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Reset(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *Handler) handleChangePath(w http.ResponseWriter, r *http.Request) {
	var req changePathRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	a, err := h.svc.ChangePath(r.Context(), r.PathValue("id"), req.PathID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *Handler) handleSelectSubPath(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.SelectSubPath(r.Context(), r.PathValue("id"), r.PathValue("subPath"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *Handler) handleClearSubPath(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.ClearSubPath(r.Context(), r.PathValue("id"), r.PathValue("subPath"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *Handler) handleAssessmentQuestions(w http.ResponseWriter, r *http.Request) {
	qs, err := h.svc.Questions(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, qs)
}

func (h *Handler) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	entry, err := h.svc.Answer(r.Context(), r.PathValue("id"), r.PathValue("prefix"), r.PathValue("questionID"), req.Answer)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) handleNotes(w http.ResponseWriter, r *http.Request) {
	var req notesRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	entry, err := h.svc.SetNotes(r.Context(), r.PathValue("id"), r.PathValue("prefix"), r.PathValue("questionID"), req.Notes)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) handleScore(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Evaluate(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
