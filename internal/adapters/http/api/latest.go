package api

import (
	"context"
	"net/http"
)

// LatestDependencies exposes the most recent calculation.
type LatestDependencies interface {
	Latest(ctx context.Context) (Calculation, bool)
}

// LatestHandler handles latest-result requests.
type LatestHandler struct {
	deps LatestDependencies
}

// NewLatestHandler creates a new latest handler.
func NewLatestHandler(deps LatestDependencies) *LatestHandler {
	return &LatestHandler{deps: deps}
}

// HandleLatest handles GET /api/latest requests.
func (h *LatestHandler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	const op = "api.latest"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	calc, ok := h.deps.Latest(r.Context())
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", NewKind(op, ErrNotFound))
		return
	}
	writeJSON(w, http.StatusOK, newCalculationResponse(calc))
}
