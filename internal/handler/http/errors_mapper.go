package http

import (
	"errors"
	"net/http"

	"github.com/strata-config/strata/internal/resolve"
	"github.com/strata-config/strata/internal/source"
	"github.com/strata-config/strata/internal/values"
)

var errorStatusMap = map[error]int{
	source.ErrEnvironmentNotFound:    http.StatusNotFound,
	source.ErrInvalidEnvironmentName: http.StatusBadRequest,

	values.ErrInvalidSetValue:  http.StatusBadRequest,
	values.ErrInvalidStructure: http.StatusUnprocessableEntity,

	resolve.ErrMissingRequiredValue: http.StatusUnprocessableEntity,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
