// Package recipe contains the core domain logic for saved recipes.
// A saved recipe is the source of truth for grocery imports: its
// ingredient records feed the grocery merge policy.
package recipe

import (
	"time"

	"github.com/fuelapp/v1/internal/domain/shared"
	"github.com/google/uuid"
)

// Recipe represents a recipe a user has saved to their collection, whether
// found through search or generated for them.
type Recipe struct {
	id      uuid.UUID
	userID  uuid.UUID
	title   string
	summary string

	// Optional external catalog id when the recipe came from search.
	externalID *int64

	imageURL       string
	sourceURL      string
	readyInMinutes int
	servings       int

	instructions string
	ingredients  []Ingredient
	nutrition    Nutrition

	cuisines []string
	diets    []string

	aiGenerated bool

	createdAt time.Time
	updatedAt time.Time

	events []shared.DomainEvent
}

// NewRecipe creates a saved recipe with validation.
func NewRecipe(userID uuid.UUID, title string, ingredients []Ingredient) (*Recipe, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	for _, ing := range ingredients {
		if err := ing.Validate(); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	r := &Recipe{
		id:          uuid.New(),
		userID:      userID,
		title:       title,
		ingredients: ingredients,
		servings:    1,
		createdAt:   now,
		updatedAt:   now,
		events:      []shared.DomainEvent{},
	}

	r.addEvent(RecipeSavedEvent{
		RecipeID: r.id,
		UserID:   userID,
		Title:    title,
		SavedAt:  now,
	})

	return r, nil
}

// Reconstitute rebuilds a recipe from persisted state without raising
// events. Used by the persistence mappers only.
func Reconstitute(
	id, userID uuid.UUID,
	title, summary string,
	externalID *int64,
	imageURL, sourceURL string,
	readyInMinutes, servings int,
	instructions string,
	ingredients []Ingredient,
	nutrition Nutrition,
	cuisines, diets []string,
	aiGenerated bool,
	createdAt, updatedAt time.Time,
) *Recipe {
	return &Recipe{
		id:             id,
		userID:         userID,
		title:          title,
		summary:        summary,
		externalID:     externalID,
		imageURL:       imageURL,
		sourceURL:      sourceURL,
		readyInMinutes: readyInMinutes,
		servings:       servings,
		instructions:   instructions,
		ingredients:    ingredients,
		nutrition:      nutrition,
		cuisines:       cuisines,
		diets:          diets,
		aiGenerated:    aiGenerated,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		events:         []shared.DomainEvent{},
	}
}

// ID returns the recipe's unique identifier.
func (r *Recipe) ID() uuid.UUID { return r.id }

// UserID returns the owning user's identifier.
func (r *Recipe) UserID() uuid.UUID { return r.userID }

// Title returns the recipe title.
func (r *Recipe) Title() string { return r.title }

// Summary returns the recipe summary.
func (r *Recipe) Summary() string { return r.summary }

// ExternalID returns the external catalog id, nil for original recipes.
func (r *Recipe) ExternalID() *int64 { return r.externalID }

// ImageURL returns the recipe image URL.
func (r *Recipe) ImageURL() string { return r.imageURL }

// SourceURL returns the original source URL.
func (r *Recipe) SourceURL() string { return r.sourceURL }

// ReadyInMinutes returns the total preparation time in minutes.
func (r *Recipe) ReadyInMinutes() int { return r.readyInMinutes }

// Servings returns the number of servings.
func (r *Recipe) Servings() int { return r.servings }

// Instructions returns the cooking instructions.
func (r *Recipe) Instructions() string { return r.instructions }

// Ingredients returns the recipe's ingredient records.
func (r *Recipe) Ingredients() []Ingredient { return r.ingredients }

// Nutrition returns the per-serving nutrition estimate.
func (r *Recipe) Nutrition() Nutrition { return r.nutrition }

// Cuisines returns the cuisine tags.
func (r *Recipe) Cuisines() []string { return r.cuisines }

// Diets returns the diet tags.
func (r *Recipe) Diets() []string { return r.diets }

// IsAIGenerated reports whether the recipe was machine-generated.
func (r *Recipe) IsAIGenerated() bool { return r.aiGenerated }

// CreatedAt returns when the recipe was saved.
func (r *Recipe) CreatedAt() time.Time { return r.createdAt }

// UpdatedAt returns when the recipe was last modified.
func (r *Recipe) UpdatedAt() time.Time { return r.updatedAt }

// SetDetails fills the descriptive fields in one call. Zero values for
// readyInMinutes and servings leave the current value untouched.
func (r *Recipe) SetDetails(summary, imageURL, sourceURL, instructions string, readyInMinutes, servings int) {
	r.summary = summary
	r.imageURL = imageURL
	r.sourceURL = sourceURL
	r.instructions = instructions
	if readyInMinutes > 0 {
		r.readyInMinutes = readyInMinutes
	}
	if servings > 0 {
		r.servings = servings
	}
	r.updatedAt = time.Now()
}

// SetExternalID records the external catalog id the recipe came from.
func (r *Recipe) SetExternalID(id int64) {
	r.externalID = &id
	r.updatedAt = time.Now()
}

// SetNutrition records the nutrition estimate.
func (r *Recipe) SetNutrition(n Nutrition) {
	r.nutrition = n
	r.updatedAt = time.Now()
}

// SetTags records cuisine and diet tags.
func (r *Recipe) SetTags(cuisines, diets []string) {
	r.cuisines = cuisines
	r.diets = diets
	r.updatedAt = time.Now()
}

// MarkAIGenerated flags the recipe as machine-generated.
func (r *Recipe) MarkAIGenerated() {
	r.aiGenerated = true
	r.updatedAt = time.Now()
}

// addEvent queues a domain event for dispatch.
func (r *Recipe) addEvent(event shared.DomainEvent) {
	r.events = append(r.events, event)
}

// Events returns and clears pending domain events.
func (r *Recipe) Events() []shared.DomainEvent {
	events := r.events
	r.events = []shared.DomainEvent{}
	return events
}

func validateTitle(title string) error {
	if len(title) < 3 {
		return ErrTitleTooShort
	}
	if len(title) > 200 {
		return ErrTitleTooLong
	}
	return nil
}
