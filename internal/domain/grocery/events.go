package grocery

import (
	"time"

	"github.com/google/uuid"
)

// Domain Events - Events that occur within the grocery domain

// ItemAddedEvent is raised when a new item lands on a user's list.
type ItemAddedEvent struct {
	ItemID   uuid.UUID
	UserID   uuid.UUID
	Name     string
	Category Category
	AddedAt  time.Time
}

func (e ItemAddedEvent) EventName() string {
	return "grocery.item.added"
}

func (e ItemAddedEvent) OccurredAt() time.Time {
	return e.AddedAt
}

// ItemMergedEvent is raised when a recipe import folds a quantity into an
// existing unchecked item.
type ItemMergedEvent struct {
	ItemID   uuid.UUID
	UserID   uuid.UUID
	Name     string
	Added    float64
	Total    float64
	MergedAt time.Time
}

func (e ItemMergedEvent) EventName() string {
	return "grocery.item.merged"
}

func (e ItemMergedEvent) OccurredAt() time.Time {
	return e.MergedAt
}

// ItemCheckedEvent is raised when the user toggles an item's purchased
// state.
type ItemCheckedEvent struct {
	ItemID    uuid.UUID
	UserID    uuid.UUID
	Checked   bool
	ToggledAt time.Time
}

func (e ItemCheckedEvent) EventName() string {
	return "grocery.item.checked"
}

func (e ItemCheckedEvent) OccurredAt() time.Time {
	return e.ToggledAt
}
