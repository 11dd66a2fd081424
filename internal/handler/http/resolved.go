package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// getResolved serves the fully merged configuration for one environment.
// The optional "set" query parameter accepts a comma-separated list of
// "path=value" overrides applied as the highest-precedence layer.
func (h *Handler) getResolved(w http.ResponseWriter, r *http.Request) {
	environment := chi.URLParam(r, "environment")
	setExpr := r.URL.Query().Get("set")

	resolved, err := h.services.ResolutionService.Resolve(r.Context(), environment, setExpr)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, resolved)
}
