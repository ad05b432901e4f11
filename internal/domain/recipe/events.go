package recipe

import (
	"time"

	"github.com/google/uuid"
)

// RecipeSavedEvent is raised when a user saves a recipe to their collection.
type RecipeSavedEvent struct {
	RecipeID uuid.UUID
	UserID   uuid.UUID
	Title    string
	SavedAt  time.Time
}

func (e RecipeSavedEvent) EventName() string     { return "recipe.saved" }
func (e RecipeSavedEvent) OccurredAt() time.Time { return e.SavedAt }

// RecipeRemovedEvent is raised when a user removes a saved recipe.
type RecipeRemovedEvent struct {
	RecipeID  uuid.UUID
	UserID    uuid.UUID
	RemovedAt time.Time
}

func (e RecipeRemovedEvent) EventName() string     { return "recipe.removed" }
func (e RecipeRemovedEvent) OccurredAt() time.Time { return e.RemovedAt }
