package http

import (
	"encoding/json"
	"net/http"

	"github.com/strata-config/strata/internal/logger"
	"github.com/strata-config/strata/models"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.FromRequest(r).Err(err).Msg("error encoding response body")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
	} else {
		logger.FromRequest(r).Debug().Err(err).Msg("request rejected")
	}

	writeJSON(w, r, status, models.ErrorResponse{Error: err.Error()})
}
