// Package handlers provides HTTP handlers for the saved recipe endpoints
package handlers

import (
	"net/http"
	"strconv"

	"github.com/fuelapp/v1/internal/infrastructure/http/middleware"
	"github.com/fuelapp/v1/internal/ports/inbound"
	"github.com/fuelapp/v1/pkg/errors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecipeAPIHandlers handles saved recipe API requests
type RecipeAPIHandlers struct {
	recipeService inbound.RecipeService
	logger        *zap.Logger
}

// NewRecipeAPIHandlers creates a new recipe API handlers instance
func NewRecipeAPIHandlers(recipeService inbound.RecipeService, logger *zap.Logger) *RecipeAPIHandlers {
	return &RecipeAPIHandlers{
		recipeService: recipeService,
		logger:        logger,
	}
}

// SaveRecipeRequest represents a recipe save request
type SaveRecipeRequest struct {
	Title          string                      `json:"title" validate:"required,min=3,max=200"`
	Summary        string                      `json:"summary,omitempty"`
	ExternalID     *int64                      `json:"externalId,omitempty"`
	ImageURL       string                      `json:"imageUrl,omitempty" validate:"omitempty,url"`
	SourceURL      string                      `json:"sourceUrl,omitempty" validate:"omitempty,url"`
	ReadyInMinutes int                         `json:"readyInMinutes,omitempty" validate:"gte=0"`
	Servings       int                         `json:"servings,omitempty" validate:"gte=0"`
	Instructions   string                      `json:"instructions,omitempty"`
	Ingredients    []inbound.IngredientCommand `json:"ingredients" validate:"required,min=1,dive"`
	Nutrition      *inbound.NutritionDTO       `json:"nutrition,omitempty"`
	Cuisines       []string                    `json:"cuisines,omitempty"`
	Diets          []string                    `json:"diets,omitempty"`
	AIGenerated    bool                        `json:"aiGenerated,omitempty"`
}

// SaveRecipe handles POST /api/v1/recipes
func (h *RecipeAPIHandlers) SaveRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	var req SaveRecipeRequest
	if !decodeAndValidate(w, r, h.logger, &req) {
		return
	}

	dto, err := h.recipeService.SaveRecipe(r.Context(), inbound.SaveRecipeCommand{
		UserID:         userID,
		Title:          req.Title,
		Summary:        req.Summary,
		ExternalID:     req.ExternalID,
		ImageURL:       req.ImageURL,
		SourceURL:      req.SourceURL,
		ReadyInMinutes: req.ReadyInMinutes,
		Servings:       req.Servings,
		Instructions:   req.Instructions,
		Ingredients:    req.Ingredients,
		Nutrition:      req.Nutrition,
		Cuisines:       req.Cuisines,
		Diets:          req.Diets,
		AIGenerated:    req.AIGenerated,
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

// ListRecipes handles GET /api/v1/recipes
func (h *RecipeAPIHandlers) ListRecipes(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("perPage"))

	list, err := h.recipeService.ListRecipes(r.Context(), userID, inbound.PaginationParams{
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    list,
	})
}

// GetRecipe handles GET /api/v1/recipes/{id}
func (h *RecipeAPIHandlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	recipeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("invalid recipe id"))
		return
	}

	dto, err := h.recipeService.GetRecipe(r.Context(), recipeID, userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    dto,
	})
}

// DeleteRecipe handles DELETE /api/v1/recipes/{id}
func (h *RecipeAPIHandlers) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	recipeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, errors.NewBadRequestError("invalid recipe id"))
		return
	}

	if err := h.recipeService.DeleteRecipe(r.Context(), recipeID, userID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Message: "Recipe deleted",
	})
}
