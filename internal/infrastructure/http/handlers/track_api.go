// Package handlers provides HTTP handlers for the food tracking endpoints
package handlers

import (
	"net/http"
	"time"

	"github.com/fuelapp/v1/internal/infrastructure/http/middleware"
	"github.com/fuelapp/v1/internal/ports/inbound"
	"github.com/fuelapp/v1/pkg/errors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TrackAPIHandlers handles food tracking API requests
type TrackAPIHandlers struct {
	mealService inbound.MealService
	logger      *zap.Logger
}

// NewTrackAPIHandlers creates a new tracking API handlers instance
func NewTrackAPIHandlers(mealService inbound.MealService, logger *zap.Logger) *TrackAPIHandlers {
	return &TrackAPIHandlers{
		mealService: mealService,
		logger:      logger,
	}
}

// LogMealRequest represents a food log request
type LogMealRequest struct {
	Description string            `json:"description" validate:"required"`
	MealType    string            `json:"mealType" validate:"required,oneof=breakfast lunch dinner snack"`
	Macros      inbound.MacrosDTO `json:"macros"`
	Source      string            `json:"source,omitempty" validate:"omitempty,oneof=manual photo text chat"`
	Confidence  *float64          `json:"confidence,omitempty" validate:"omitempty,gte=0,lte=1"`
	LoggedAt    *time.Time        `json:"loggedAt,omitempty"`
}

// CorrectMealRequest represents a food log correction
type CorrectMealRequest struct {
	Description string            `json:"description" validate:"required"`
	Macros      inbound.MacrosDTO `json:"macros"`
	MealType    string            `json:"mealType,omitempty" validate:"omitempty,oneof=breakfast lunch dinner snack"`
}

// LogMeal handles POST /api/v1/track
func (h *TrackAPIHandlers) LogMeal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	var req LogMealRequest
	if !decodeAndValidate(w, r, h.logger, &req) {
		return
	}

	var loggedAt time.Time
	if req.LoggedAt != nil {
		loggedAt = *req.LoggedAt
	}

	dto, err := h.mealService.LogMeal(r.Context(), inbound.LogMealCommand{
		UserID:      userID,
		Description: req.Description,
		MealType:    req.MealType,
		Macros:      req.Macros,
		Source:      req.Source,
		Confidence:  req.Confidence,
		LoggedAt:    loggedAt,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{
		Success: true,
		Data:    dto,
	})
}

// CorrectMeal handles PUT /api/v1/track/{id}
func (h *TrackAPIHandlers) CorrectMeal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	entryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("invalid entry id"))
		return
	}

	var req CorrectMealRequest
	if !decodeAndValidate(w, r, h.logger, &req) {
		return
	}

	dto, err := h.mealService.CorrectMeal(r.Context(), inbound.CorrectMealCommand{
		EntryID:     entryID,
		UserID:      userID,
		Description: req.Description,
		Macros:      req.Macros,
		MealType:    req.MealType,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    dto,
	})
}

// DeleteMeal handles DELETE /api/v1/track/{id}
func (h *TrackAPIHandlers) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	entryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("invalid entry id"))
		return
	}

	if err := h.mealService.DeleteMeal(r.Context(), entryID, userID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Message: "Entry deleted",
	})
}

// DailySummary handles GET /api/v1/track/summary?date=2026-08-28
func (h *TrackAPIHandlers) DailySummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	day := time.Now()
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		parsed, err := time.Parse("2006-01-02", dateParam)
		if err != nil {
			writeError(w, h.logger, errors.NewBadRequestError("date must be YYYY-MM-DD"))
			return
		}
		day = parsed
	}

	summary, err := h.mealService.GetDailySummary(r.Context(), userID, day)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    summary,
	})
}
