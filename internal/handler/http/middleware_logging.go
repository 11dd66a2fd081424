package http

import (
	"net/http"
	"time"

	"github.com/strata-config/strata/internal/logger"
)

// withLogging emits one structured access-log line per request once the
// downstream handler has finished. The response status and body size are
// captured through the responseWriter decorator.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		started := time.Now()

		rw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)

		status := rw.status
		if status == 0 {
			// handler returned without writing anything
			status = http.StatusOK
		}

		log.Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", status).
			Int("size", rw.size).
			Dur("duration", time.Since(started)).
			Send()
	})
}
