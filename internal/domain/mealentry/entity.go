// Package mealentry contains the domain logic for food tracking. Each
// entry is one logged food with its macro breakdown; daily summaries are
// aggregated from entries by the application layer.
package mealentry

import (
	"strings"
	"time"

	"github.com/fuelapp/v1/internal/domain/shared"
	"github.com/google/uuid"
)

// MealType classifies an entry within the day.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes lists all valid meal types.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// ValidMealType reports whether t is a known meal type.
func ValidMealType(t MealType) bool {
	for _, mt := range MealTypes {
		if mt == t {
			return true
		}
	}
	return false
}

// Source records how the entry was logged.
type Source string

const (
	SourceManual Source = "manual"
	SourcePhoto  Source = "photo"
	SourceText   Source = "text"
	SourceChat   Source = "chat"
)

// Macros is the nutritional breakdown of a logged food.
type Macros struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
	Sugar    float64
}

// Add returns the component-wise sum of two macro sets.
func (m Macros) Add(other Macros) Macros {
	return Macros{
		Calories: m.Calories + other.Calories,
		Protein:  m.Protein + other.Protein,
		Carbs:    m.Carbs + other.Carbs,
		Fat:      m.Fat + other.Fat,
		Fiber:    m.Fiber + other.Fiber,
		Sugar:    m.Sugar + other.Sugar,
	}
}

// Entry is a single logged food.
type Entry struct {
	id          uuid.UUID
	userID      uuid.UUID
	description string
	mealType    MealType
	macros      Macros
	source      Source
	confidence  *float64
	loggedAt    time.Time
	createdAt   time.Time
	updatedAt   time.Time

	events []shared.DomainEvent
}

// NewEntry creates a logged food entry with validation. loggedAt zero
// means "now".
func NewEntry(userID uuid.UUID, description string, mealType MealType, macros Macros, source Source, loggedAt time.Time) (*Entry, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if !ValidMealType(mealType) {
		return nil, ErrInvalidMealType
	}
	if macros.Calories < 0 || macros.Protein < 0 || macros.Carbs < 0 || macros.Fat < 0 || macros.Fiber < 0 || macros.Sugar < 0 {
		return nil, ErrNegativeMacros
	}
	if source == "" {
		source = SourceManual
	}

	now := time.Now()
	if loggedAt.IsZero() {
		loggedAt = now
	}

	e := &Entry{
		id:          uuid.New(),
		userID:      userID,
		description: description,
		mealType:    mealType,
		macros:      macros,
		source:      source,
		loggedAt:    loggedAt,
		createdAt:   now,
		updatedAt:   now,
		events:      []shared.DomainEvent{},
	}

	e.events = append(e.events, EntryLoggedEvent{
		EntryID:  e.id,
		UserID:   userID,
		MealType: mealType,
		Calories: macros.Calories,
		LoggedAt: loggedAt,
	})

	return e, nil
}

// Reconstitute rebuilds an entry from persisted state without raising
// events. Used by the persistence mappers only.
func Reconstitute(
	id, userID uuid.UUID,
	description string,
	mealType MealType,
	macros Macros,
	source Source,
	confidence *float64,
	loggedAt, createdAt, updatedAt time.Time,
) *Entry {
	return &Entry{
		id:          id,
		userID:      userID,
		description: description,
		mealType:    mealType,
		macros:      macros,
		source:      source,
		confidence:  confidence,
		loggedAt:    loggedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		events:      []shared.DomainEvent{},
	}
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() uuid.UUID { return e.id }

// UserID returns the owning user's identifier.
func (e *Entry) UserID() uuid.UUID { return e.userID }

// Description returns the food description.
func (e *Entry) Description() string { return e.description }

// MealType returns the meal classification.
func (e *Entry) MealType() MealType { return e.mealType }

// Macros returns the macro breakdown.
func (e *Entry) Macros() Macros { return e.macros }

// Source returns how the entry was logged.
func (e *Entry) Source() Source { return e.source }

// Confidence returns the estimation confidence for AI-derived entries,
// nil for manual ones.
func (e *Entry) Confidence() *float64 { return e.confidence }

// SetConfidence records how confident the estimator was, in [0, 1].
func (e *Entry) SetConfidence(confidence float64) error {
	if confidence < 0 || confidence > 1 {
		return ErrInvalidConfidence
	}
	e.confidence = &confidence
	return nil
}

// LoggedAt returns the time the food was eaten.
func (e *Entry) LoggedAt() time.Time { return e.loggedAt }

// CreatedAt returns when the entry was recorded.
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

// UpdatedAt returns when the entry was last modified.
func (e *Entry) UpdatedAt() time.Time { return e.updatedAt }

// Correct replaces the description and macros after the fact, keeping
// the original logged time.
func (e *Entry) Correct(description string, macros Macros) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return ErrEmptyDescription
	}
	if macros.Calories < 0 || macros.Protein < 0 || macros.Carbs < 0 || macros.Fat < 0 || macros.Fiber < 0 || macros.Sugar < 0 {
		return ErrNegativeMacros
	}
	e.description = description
	e.macros = macros
	e.updatedAt = time.Now()
	return nil
}

// Reclassify moves the entry to a different meal.
func (e *Entry) Reclassify(mealType MealType) error {
	if !ValidMealType(mealType) {
		return ErrInvalidMealType
	}
	e.mealType = mealType
	e.updatedAt = time.Now()
	return nil
}

// Events returns and clears pending domain events.
func (e *Entry) Events() []shared.DomainEvent {
	events := e.events
	e.events = []shared.DomainEvent{}
	return events
}
