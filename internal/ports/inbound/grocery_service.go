// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/fuelapp/v1/internal/domain/grocery"
	"github.com/google/uuid"
)

// GroceryService defines the use cases for grocery list management.
// This is the primary port that HTTP handlers and other driving adapters will use.
type GroceryService interface {
	// Commands
	AddItem(ctx context.Context, cmd AddItemCommand) (*GroceryItemDTO, error)
	UpdateItem(ctx context.Context, cmd UpdateItemCommand) (*GroceryItemDTO, error)
	DeleteItem(ctx context.Context, itemID, userID uuid.UUID) error
	ClearChecked(ctx context.Context, userID uuid.UUID) (int64, error)

	// ImportFromRecipe parses a saved recipe's ingredients and merges them
	// into the user's list. Returns how many rows were added and how many
	// merged into existing rows.
	ImportFromRecipe(ctx context.Context, userID, recipeID uuid.UUID) (*ImportResult, error)

	// Queries
	ListItems(ctx context.Context, userID uuid.UUID) ([]GroceryItemDTO, error)
}

// AddItemCommand contains data for adding an item manually.
type AddItemCommand struct {
	UserID   uuid.UUID
	Name     string
	Quantity *float64
	Unit     *string
	Category string
}

// UpdateItemCommand contains data for updating an item. Nil fields are
// left unchanged.
type UpdateItemCommand struct {
	ItemID   uuid.UUID
	UserID   uuid.UUID
	Checked  *bool
	Quantity *float64
}

// ImportResult reports the outcome of a recipe import.
type ImportResult struct {
	Added  int `json:"added"`
	Merged int `json:"merged"`
}

// GroceryItemDTO is the transport representation of a grocery item.
type GroceryItemDTO struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Quantity    *float64   `json:"quantity,omitempty"`
	Unit        *string    `json:"unit,omitempty"`
	Category    string     `json:"category"`
	Checked     bool       `json:"checked"`
	RecipeID    *uuid.UUID `json:"recipeId,omitempty"`
	RecipeTitle string     `json:"recipeTitle,omitempty"`
	CreatedAt   string     `json:"createdAt"`
}

// ToGroceryItemDTO maps a domain item to its transport form.
func ToGroceryItemDTO(item *grocery.Item) GroceryItemDTO {
	return GroceryItemDTO{
		ID:          item.ID(),
		Name:        item.Name(),
		Quantity:    item.Quantity(),
		Unit:        item.Unit(),
		Category:    string(item.Category()),
		Checked:     item.Checked(),
		RecipeID:    item.RecipeID(),
		RecipeTitle: item.RecipeTitle(),
		CreatedAt:   item.CreatedAt().Format("2006-01-02T15:04:05Z07:00"),
	}
}
