package api

import (
	"net/http"

	"github.com/vcfready/vcfready/pkg/catalog"
)

type subPathResponse struct {
	Prefix    string `json:"prefix"`
	Title     string `json:"title"`
	Questions int    `json:"questions"`
}

type pathResponse struct {
	ID          string                    `json:"id"`
	Title       string                    `json:"title"`
	Description string                    `json:"description"`
	Customer    []catalog.Consideration   `json:"customer,omitempty"`
	Delivery    []catalog.DeliverySection `json:"delivery,omitempty"`
	SubPaths    []subPathResponse         `json:"sub_paths"`
}

func pathToResponse(p catalog.Path) pathResponse {
	resp := pathResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Customer:    p.Customer,
		Delivery:    p.Delivery,
		SubPaths:    []subPathResponse{},
	}
	for _, set := range p.SubPaths {
		resp.SubPaths = append(resp.SubPaths, subPathResponse{
			Prefix:    set.Prefix,
			Title:     set.Title,
			Questions: len(set.Questions),
		})
	}
	return resp
}

func (h *Handler) handleListPaths(w http.ResponseWriter, r *http.Request) {
	paths := h.svc.Catalog().Paths()
	result := make([]pathResponse, 0, len(paths))
	for _, p := range paths {
		result = append(result, pathToResponse(p))
	}
	writeJSON(w, http.StatusOK, result)
}

// handleListQuestions handles GET /api/v1/paths/{pathID}/questions. Repeat
// the subpath query parameter to include opt-in sets.
func (h *Handler) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	pathID := r.PathValue("pathID")
	cat := h.svc.Catalog()
	if _, ok := cat.Path(pathID); !ok {
		writeError(w, http.StatusNotFound, "unknown path "+pathID)
		return
	}
	questions, err := cat.Questions(pathID, r.URL.Query()["subpath"]...)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if questions == nil {
		questions = []catalog.PrefixedQuestion{}
	}
	writeJSON(w, http.StatusOK, questions)
}
