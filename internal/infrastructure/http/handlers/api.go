// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/fuelapp/v1/pkg/errors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// validate is shared by all request decoders.
var validate = validator.New()

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError maps an error onto the standard error envelope. AppErrors
// carry their own status code; anything else is a 500.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	appErr := errors.Wrap(err, "request failed")
	writeJSON(w, logger, appErr.StatusCode(), APIResponse{
		Success: false,
		Error:   appErr.Message,
	})
}

// decodeAndValidate decodes a JSON body into dst and runs struct
// validation. A false return means the error response is already written.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *zap.Logger, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, logger, errors.NewBadRequestError("invalid JSON body"))
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, logger, errors.NewValidationError(err.Error()))
		return false
	}
	return true
}

// HealthHandlers serves liveness probes
type HealthHandlers struct {
	version string
	logger  *zap.Logger
}

// NewHealthHandlers creates health handlers
func NewHealthHandlers(version string, logger *zap.Logger) *HealthHandlers {
	return &HealthHandlers{version: version, logger: logger}
}

// HealthCheck handles GET /health
func (h *HealthHandlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   h.version,
		},
	})
}
