package calories

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fdg312/caloric-api/internal/units"
)

// Handler handles HTTP requests for calorie prediction.
type Handler struct {
	service *Service
}

// NewHandler creates a new calories handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandlePredict handles POST /v1/predict.
func (h *Handler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	var req PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_payload", "Invalid request body")
		return
	}

	in, err := req.Validate()
	if err != nil {
		if errors.Is(err, units.ErrInvalidSystem) {
			writeError(w, http.StatusBadRequest, "invalid_unit_system", "units must be one of: metric, imperial")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	result, err := h.service.Compute(in)
	if err != nil {
		if errors.Is(err, units.ErrInvalidSystem) {
			writeError(w, http.StatusBadRequest, "invalid_unit_system", "units must be one of: metric, imperial")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to compute caloric needs")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

// writeError writes an error response in the standard format.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
