package inbound

import (
	"context"

	"github.com/fuelapp/v1/internal/domain/recipe"
	"github.com/google/uuid"
)

// RecipeService defines the use cases for the saved recipe collection.
type RecipeService interface {
	// Commands
	SaveRecipe(ctx context.Context, cmd SaveRecipeCommand) (*RecipeDTO, error)
	DeleteRecipe(ctx context.Context, recipeID, userID uuid.UUID) error

	// Queries
	GetRecipe(ctx context.Context, recipeID, userID uuid.UUID) (*RecipeDTO, error)
	ListRecipes(ctx context.Context, userID uuid.UUID, params PaginationParams) (*RecipeList, error)
}

// SaveRecipeCommand contains data for saving a recipe.
type SaveRecipeCommand struct {
	UserID         uuid.UUID
	Title          string
	Summary        string
	ExternalID     *int64
	ImageURL       string
	SourceURL      string
	ReadyInMinutes int
	Servings       int
	Instructions   string
	Ingredients    []IngredientCommand
	Nutrition      *NutritionDTO
	Cuisines       []string
	Diets          []string
	AIGenerated    bool
}

// IngredientCommand is one ingredient record on a save request.
type IngredientCommand struct {
	Name     string   `json:"name" validate:"required"`
	Amount   *float64 `json:"amount,omitempty"`
	Unit     *string  `json:"unit,omitempty"`
	Original string   `json:"original,omitempty"`
}

// PaginationParams for list queries.
type PaginationParams struct {
	Page    int
	PerPage int
}

// Offset converts page/perPage into a row offset.
func (p PaginationParams) Offset() int {
	page := p.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * p.Limit()
}

// Limit returns the effective page size.
func (p PaginationParams) Limit() int {
	if p.PerPage < 1 || p.PerPage > 100 {
		return 20
	}
	return p.PerPage
}

// RecipeDTO is the transport representation of a saved recipe.
type RecipeDTO struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	Summary        string          `json:"summary,omitempty"`
	ExternalID     *int64          `json:"externalId,omitempty"`
	ImageURL       string          `json:"imageUrl,omitempty"`
	SourceURL      string          `json:"sourceUrl,omitempty"`
	ReadyInMinutes int             `json:"readyInMinutes,omitempty"`
	Servings       int             `json:"servings"`
	Instructions   string          `json:"instructions,omitempty"`
	Ingredients    []IngredientDTO `json:"ingredients"`
	Nutrition      *NutritionDTO   `json:"nutrition,omitempty"`
	Cuisines       []string        `json:"cuisines,omitempty"`
	Diets          []string        `json:"diets,omitempty"`
	AIGenerated    bool            `json:"aiGenerated"`
	CreatedAt      string          `json:"createdAt"`
}

// IngredientDTO is the transport form of an ingredient record.
type IngredientDTO struct {
	Name     string   `json:"name"`
	Amount   *float64 `json:"amount,omitempty"`
	Unit     *string  `json:"unit,omitempty"`
	Original string   `json:"original,omitempty"`
}

// NutritionDTO is the transport form of a nutrition estimate.
type NutritionDTO struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber,omitempty"`
	Sugar    float64 `json:"sugar,omitempty"`
}

// RecipeList is a paginated collection of recipes.
type RecipeList struct {
	Recipes []RecipeDTO `json:"recipes"`
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	PerPage int         `json:"perPage"`
}

// ToRecipeDTO maps a domain recipe to its transport form.
func ToRecipeDTO(r *recipe.Recipe) RecipeDTO {
	ingredients := make([]IngredientDTO, 0, len(r.Ingredients()))
	for _, ing := range r.Ingredients() {
		ingredients = append(ingredients, IngredientDTO{
			Name:     ing.Name,
			Amount:   ing.Amount,
			Unit:     ing.Unit,
			Original: ing.Original,
		})
	}

	dto := RecipeDTO{
		ID:             r.ID(),
		Title:          r.Title(),
		Summary:        r.Summary(),
		ExternalID:     r.ExternalID(),
		ImageURL:       r.ImageURL(),
		SourceURL:      r.SourceURL(),
		ReadyInMinutes: r.ReadyInMinutes(),
		Servings:       r.Servings(),
		Instructions:   r.Instructions(),
		Ingredients:    ingredients,
		Cuisines:       r.Cuisines(),
		Diets:          r.Diets(),
		AIGenerated:    r.IsAIGenerated(),
		CreatedAt:      r.CreatedAt().Format("2006-01-02T15:04:05Z07:00"),
	}

	if n := r.Nutrition(); !n.IsZero() {
		dto.Nutrition = &NutritionDTO{
			Calories: n.Calories,
			Protein:  n.Protein,
			Carbs:    n.Carbs,
			Fat:      n.Fat,
			Fiber:    n.Fiber,
			Sugar:    n.Sugar,
		}
	}

	return dto
}
