package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/strata-config/strata/models"
)

func (h *Handler) getEnvironments(w http.ResponseWriter, r *http.Request) {
	environments, err := h.services.ResolutionService.Environments(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, models.EnvironmentsResponse{Environments: environments})
}

func (h *Handler) getValues(w http.ResponseWriter, r *http.Request) {
	environment := chi.URLParam(r, "environment")

	tree, err := h.services.ResolutionService.Values(r.Context(), environment)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, models.ValuesResponse{
		Environment: environment,
		Values:      tree,
	})
}
