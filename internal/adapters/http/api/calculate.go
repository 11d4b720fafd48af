package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/caltrack/internal/domain/calorie"
	"github.com/okian/caltrack/pkg/logger"
)

const maxRequestBody = 1 << 16

// CalculateDependencies runs one calculation.
type CalculateDependencies interface {
	Calculate(ctx context.Context, in calorie.Input) (Calculation, error)
}

// CalculateHandler handles calculation requests.
type CalculateHandler struct {
	deps   CalculateDependencies
	logger logger.Logger
}

// NewCalculateHandler creates a new calculate handler.
func NewCalculateHandler(deps CalculateDependencies) *CalculateHandler {
	return &CalculateHandler{deps: deps, logger: logger.Nop()}
}

// HandleCalculate handles POST /api/calculate requests.
func (h *CalculateHandler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "api.calculate"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var in calorie.Input
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	calc, err := h.deps.Calculate(r.Context(), in)
	if err != nil {
		if ve, ok := calorie.AsValidation(err); ok {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Code:    "invalid_input",
				Message: NewKind(op, ErrInvalidInput).Error(),
				Fields:  ve.Fields(),
			})
			return
		}
		if errors.Is(err, calorie.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "invalid_input", WrapKind(op, ErrInvalidInput, err))
			return
		}
		h.logger.Error(r.Context(), "calculation failed",
			logger.String("request_id", RequestIDFromContext(r.Context())),
			logger.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	writeJSON(w, http.StatusOK, newCalculationResponse(calc))
}
