package models

// EnvironmentsResponse is returned by GET /api/environments and lists the
// overlay sets known to the values source.
type EnvironmentsResponse struct {
	// Environments holds the discovered environment identifiers in sorted
	// order (e.g. ["dev", "prod", "staging"]).
	Environments []string `json:"environments"`
}

// ValuesResponse is returned by GET /api/values/{environment} and carries a
// single raw (unmerged) configuration layer.
type ValuesResponse struct {
	// Environment is the overlay identifier, or "base" for the base layer.
	Environment string `json:"environment"`

	// Values is the raw document tree exactly as loaded from the source.
	Values Tree `json:"values"`
}

// ErrorResponse is the JSON body written for every non-2xx API response.
type ErrorResponse struct {
	// Error is a human-readable description of the failure.
	Error string `json:"error"`
}
