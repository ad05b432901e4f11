// Package handlers provides HTTP handlers for the grocery list endpoints
package handlers

import (
	"net/http"

	"github.com/fuelapp/v1/internal/infrastructure/http/middleware"
	"github.com/fuelapp/v1/internal/ports/inbound"
	"github.com/fuelapp/v1/pkg/errors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GroceryAPIHandlers handles grocery list API requests
type GroceryAPIHandlers struct {
	groceryService inbound.GroceryService
	logger         *zap.Logger
}

// NewGroceryAPIHandlers creates a new grocery API handlers instance
func NewGroceryAPIHandlers(groceryService inbound.GroceryService, logger *zap.Logger) *GroceryAPIHandlers {
	return &GroceryAPIHandlers{
		groceryService: groceryService,
		logger:         logger,
	}
}

// AddItemRequest represents a manual item addition
type AddItemRequest struct {
	Name     string   `json:"name" validate:"required,max=255"`
	Quantity *float64 `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Unit     *string  `json:"unit,omitempty"`
	Category string   `json:"category,omitempty"`
}

// UpdateItemRequest represents a partial item update
type UpdateItemRequest struct {
	Checked  *bool    `json:"checked,omitempty"`
	Quantity *float64 `json:"quantity,omitempty" validate:"omitempty,gte=0"`
}

// ImportRequest represents a recipe import request
type ImportRequest struct {
	RecipeID string `json:"recipeId" validate:"required,uuid"`
}

// ListItems handles GET /api/v1/grocery
func (h *GroceryAPIHandlers) ListItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	items, err := h.groceryService.ListItems(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    items,
	})
}

// AddItem handles POST /api/v1/grocery
func (h *GroceryAPIHandlers) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	var req AddItemRequest
	if !decodeAndValidate(w, r, h.logger, &req) {
		return
	}

	dto, err := h.groceryService.AddItem(r.Context(), inbound.AddItemCommand{
		UserID:   userID,
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Category: req.Category,
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

// UpdateItem handles PATCH /api/v1/grocery/{id}
func (h *GroceryAPIHandlers) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("invalid item id"))
		return
	}

	var req UpdateItemRequest
	if !decodeAndValidate(w, r, h.logger, &req) {
		return
	}

	dto, err := h.groceryService.UpdateItem(r.Context(), inbound.UpdateItemCommand{
		ItemID:   itemID,
		UserID:   userID,
		Checked:  req.Checked,
		Quantity: req.Quantity,
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

// DeleteItem handles DELETE /api/v1/grocery/{id}
func (h *GroceryAPIHandlers) DeleteItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("invalid item id"))
		return
	}

	if err := h.groceryService.DeleteItem(r.Context(), itemID, userID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Message: "Item deleted",
	})
}

// ClearChecked handles DELETE /api/v1/grocery/checked
func (h *GroceryAPIHandlers) ClearChecked(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	removed, err := h.groceryService.ClearChecked(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    map[string]int64{"removed": removed},
	})
}

// ImportFromRecipe handles POST /api/v1/grocery/from-recipe
func (h *GroceryAPIHandlers) ImportFromRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	var req ImportRequest
	if !decodeAndValidate(w, r, h.logger, &req) {
		return
	}

	recipeID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("invalid recipe id"))
		return
	}

	result, err := h.groceryService.ImportFromRecipe(r.Context(), userID, recipeID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    result,
	})
}
