// Package api implements the hosted vcfready REST API.
// It exposes the question catalog, assessment sessions, scoring and report
// export on top of an assessment.Service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/vcfready/vcfready/internal/assessment"
)

// Handler is the top-level API handler for the hosted vcfready service.
type Handler struct {
	svc    *assessment.Service
	logger *zap.Logger
}

// NewHandler creates a new API handler.
func NewHandler(svc *assessment.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Catalog
	mux.HandleFunc("GET /api/v1/paths", h.handleListPaths)
	mux.HandleFunc("GET /api/v1/paths/{pathID}/questions", h.handleListQuestions)

	// Assessments
	mux.HandleFunc("POST /api/v1/assessments", h.handleCreateAssessment)
	mux.HandleFunc("GET /api/v1/assessments", h.handleListAssessments)
	mux.HandleFunc("GET /api/v1/assessments/{id}", h.handleGetAssessment)
	mux.HandleFunc("DELETE /api/v1/assessments/{id}", h.handleResetAssessment)
	mux.HandleFunc("PUT /api/v1/assessments/{id}/path", h.handleChangePath)
	mux.HandleFunc("PUT /api/v1/assessments/{id}/subpaths/{subPath}", h.handleSelectSubPath)
	mux.HandleFunc("DELETE /api/v1/assessments/{id}/subpaths/{subPath}", h.handleClearSubPath)
	mux.HandleFunc("GET /api/v1/assessments/{id}/questions", h.handleAssessmentQuestions)
	mux.HandleFunc("PUT /api/v1/assessments/{id}/answers/{prefix}/{questionID}", h.handleAnswer)
	mux.HandleFunc("PUT /api/v1/assessments/{id}/notes/{prefix}/{questionID}", h.handleNotes)
	mux.HandleFunc("GET /api/v1/assessments/{id}/score", h.handleScore)

	// Reports and stateless scoring
	mux.HandleFunc("POST /api/v1/assessments/{id}/reports", h.handleExport)
	mux.HandleFunc("GET /api/v1/reports/{reportID}", h.handleGetReport)
	mux.HandleFunc("POST /api/v1/evaluate", h.handleEvaluate)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps assessment errors onto HTTP status codes.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, assessment.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, assessment.ErrUnknownPath),
		errors.Is(err, assessment.ErrUnknownQuestion),
		errors.Is(err, assessment.ErrInvalidAnswer),
		errors.Is(err, assessment.ErrSubPathNotAllowed):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, assessment.ErrNoReportStorage):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		h.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
