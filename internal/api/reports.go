package api

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"

	"github.com/vcfready/vcfready/pkg/ledger"
	"github.com/vcfready/vcfready/pkg/readiness"
)

type exportRequest struct {
	Title string `json:"title"`
}

// handleExport handles POST /api/v1/assessments/{id}/reports. The body is
// optional.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if r.ContentLength != 0 {
		if err := decodeBody(r, &req); err != nil && err != io.EOF {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}
	rep, err := h.svc.Export(r.Context(), r.PathValue("id"), req.Title)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rep)
}

func (h *Handler) handleGetReport(w http.ResponseWriter, r *http.Request) {
	rep, err := h.svc.GetReport(r.Context(), r.PathValue("reportID"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// handleEvaluate handles POST /api/v1/evaluate: scores a posted ledger
// without storing it. ?classifier=severity switches the classifier.
func (h *Handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var body io.Reader = r.Body
	if r.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid gzip body: "+err.Error())
			return
		}
		defer gz.Close()
		body = gz
	}

	data, err := io.ReadAll(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body: "+err.Error())
		return
	}
	l := ledger.New()
	if err := json.Unmarshal(data, l); err != nil {
		writeError(w, http.StatusBadRequest, "invalid ledger JSON: "+err.Error())
		return
	}

	name := r.URL.Query().Get("classifier")
	if name == "" {
		writeJSON(w, http.StatusOK, h.svc.EvaluateLedger(l))
		return
	}
	c, err := readiness.ClassifierByName(name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	engine := readiness.NewEngine(
		readiness.WithClassifier(c),
		readiness.WithOrder(h.svc.Catalog().Order()),
	)
	writeJSON(w, http.StatusOK, engine.Evaluate(l))
}
