package inbound

import (
	"context"
	"time"

	"github.com/fuelapp/v1/internal/domain/mealentry"
	"github.com/google/uuid"
)

// MealService defines the use cases for food tracking.
type MealService interface {
	// Commands
	LogMeal(ctx context.Context, cmd LogMealCommand) (*MealEntryDTO, error)
	CorrectMeal(ctx context.Context, cmd CorrectMealCommand) (*MealEntryDTO, error)
	DeleteMeal(ctx context.Context, entryID, userID uuid.UUID) error

	// Queries
	GetDailySummary(ctx context.Context, userID uuid.UUID, day time.Time) (*DailySummary, error)
}

// LogMealCommand contains data for logging a food.
type LogMealCommand struct {
	UserID      uuid.UUID
	Description string
	MealType    string
	Macros      MacrosDTO
	Source      string
	Confidence  *float64
	LoggedAt    time.Time
}

// CorrectMealCommand replaces description and macros on an entry.
type CorrectMealCommand struct {
	EntryID     uuid.UUID
	UserID      uuid.UUID
	Description string
	Macros      MacrosDTO
	MealType    string
}

// MacrosDTO is the transport form of a macro breakdown.
type MacrosDTO struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber,omitempty"`
	Sugar    float64 `json:"sugar,omitempty"`
}

// MealEntryDTO is the transport representation of a logged food.
type MealEntryDTO struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	MealType    string    `json:"mealType"`
	Macros      MacrosDTO `json:"macros"`
	Source      string    `json:"source"`
	Confidence  *float64  `json:"confidence,omitempty"`
	LoggedAt    string    `json:"loggedAt"`
}

// DailySummary aggregates a day's entries against the user's goals.
type DailySummary struct {
	Date    string                    `json:"date"`
	Totals  MacrosDTO                 `json:"totals"`
	Goals   *MacrosDTO                `json:"goals,omitempty"`
	ByMeal  map[string][]MealEntryDTO `json:"byMeal"`
	Entries int                       `json:"entries"`
}

// ToMealEntryDTO maps a domain entry to its transport form.
func ToMealEntryDTO(e *mealentry.Entry) MealEntryDTO {
	m := e.Macros()
	return MealEntryDTO{
		ID:          e.ID(),
		Description: e.Description(),
		MealType:    string(e.MealType()),
		Macros: MacrosDTO{
			Calories: m.Calories,
			Protein:  m.Protein,
			Carbs:    m.Carbs,
			Fat:      m.Fat,
			Fiber:    m.Fiber,
			Sugar:    m.Sugar,
		},
		Source:     string(e.Source()),
		Confidence: e.Confidence(),
		LoggedAt:   e.LoggedAt().Format(time.RFC3339),
	}
}
