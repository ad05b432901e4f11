package mealentry

import (
	"time"

	"github.com/google/uuid"
)

// EntryLoggedEvent is raised when a user logs a food.
type EntryLoggedEvent struct {
	EntryID  uuid.UUID
	UserID   uuid.UUID
	MealType MealType
	Calories float64
	LoggedAt time.Time
}

func (e EntryLoggedEvent) EventName() string     { return "meal.entry.logged" }
func (e EntryLoggedEvent) OccurredAt() time.Time { return e.LoggedAt }
