package grocery

import (
	"strings"
	"time"

	"github.com/fuelapp/v1/internal/domain/shared"
	"github.com/google/uuid"
)

// Item represents one row on a user's grocery list. The lowercased,
// trimmed name is the identity key the merge policy matches on; uniqueness
// is not enforced by the store, only by that policy.
type Item struct {
	id       uuid.UUID
	userID   uuid.UUID
	name     string
	quantity *float64
	unit     *string
	category Category
	checked  bool

	// Provenance, set when the item was imported from a recipe.
	recipeID    *uuid.UUID
	recipeTitle string

	createdAt time.Time
	updatedAt time.Time

	events []shared.DomainEvent
}

// NewItem creates a grocery item for a user. The name is normalized to its
// lowercased trimmed form; an empty or unknown category classifies via
// Categorize, so persisted categories always come from the closed set.
func NewItem(userID uuid.UUID, name string, quantity *float64, unit *string, category Category) (*Item, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return nil, ErrEmptyName
	}
	if quantity != nil && *quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if !ValidCategory(string(category)) {
		category = Categorize(normalized)
	}

	now := time.Now()
	item := &Item{
		id:        uuid.New(),
		userID:    userID,
		name:      normalized,
		quantity:  quantity,
		unit:      NormalizeUnit(unit),
		category:  category,
		createdAt: now,
		updatedAt: now,
		events:    []shared.DomainEvent{},
	}

	item.addEvent(ItemAddedEvent{
		ItemID:   item.id,
		UserID:   userID,
		Name:     normalized,
		Category: category,
		AddedAt:  now,
	})

	return item, nil
}

// NewItemFromRecipe creates a grocery item carrying recipe provenance.
func NewItemFromRecipe(userID uuid.UUID, parsed ParsedIngredient, recipeID uuid.UUID, recipeTitle string) (*Item, error) {
	item, err := NewItem(userID, parsed.Name, parsed.Quantity, parsed.Unit, "")
	if err != nil {
		return nil, err
	}
	item.recipeID = &recipeID
	item.recipeTitle = recipeTitle
	return item, nil
}

// Reconstitute rebuilds an item from persisted state without raising
// events. Used by the persistence mappers only.
func Reconstitute(
	id, userID uuid.UUID,
	name string,
	quantity *float64,
	unit *string,
	category Category,
	checked bool,
	recipeID *uuid.UUID,
	recipeTitle string,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:          id,
		userID:      userID,
		name:        name,
		quantity:    quantity,
		unit:        unit,
		category:    category,
		checked:     checked,
		recipeID:    recipeID,
		recipeTitle: recipeTitle,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		events:      []shared.DomainEvent{},
	}
}

// ID returns the item's unique identifier.
func (i *Item) ID() uuid.UUID { return i.id }

// UserID returns the owning user's identifier.
func (i *Item) UserID() uuid.UUID { return i.userID }

// Name returns the normalized item name.
func (i *Item) Name() string { return i.name }

// Quantity returns the item quantity, nil when none was recorded.
func (i *Item) Quantity() *float64 { return i.quantity }

// Unit returns the normalized unit, nil when none was recorded.
func (i *Item) Unit() *string { return i.unit }

// Category returns the aisle category.
func (i *Item) Category() Category { return i.category }

// Checked reports whether the user has marked the item purchased.
func (i *Item) Checked() bool { return i.checked }

// RecipeID returns the source recipe's id, nil for manual entries.
func (i *Item) RecipeID() *uuid.UUID { return i.recipeID }

// RecipeTitle returns the source recipe's title, empty for manual entries.
func (i *Item) RecipeTitle() string { return i.recipeTitle }

// CreatedAt returns when the item was created.
func (i *Item) CreatedAt() time.Time { return i.createdAt }

// UpdatedAt returns when the item was last modified.
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }

// SameUnit reports whether the item's unit equals the given unit, treating
// nil as equal to nil. The merge policy only adds quantities across equal
// units; it never converts between them.
func (i *Item) SameUnit(unit *string) bool {
	if i.unit == nil || unit == nil {
		return i.unit == nil && unit == nil
	}
	return *i.unit == *unit
}

// AbsorbQuantity adds a quantity from a newly imported ingredient into
// this item. A nil stored quantity counts as zero.
func (i *Item) AbsorbQuantity(amount float64) {
	var current float64
	if i.quantity != nil {
		current = *i.quantity
	}
	total := current + amount
	i.quantity = &total
	i.updatedAt = time.Now()

	i.addEvent(ItemMergedEvent{
		ItemID:   i.id,
		UserID:   i.userID,
		Name:     i.name,
		Added:    amount,
		Total:    total,
		MergedAt: i.updatedAt,
	})
}

// SetChecked toggles the purchased state.
func (i *Item) SetChecked(checked bool) {
	if i.checked == checked {
		return
	}
	i.checked = checked
	i.updatedAt = time.Now()

	i.addEvent(ItemCheckedEvent{
		ItemID:    i.id,
		UserID:    i.userID,
		Checked:   checked,
		ToggledAt: i.updatedAt,
	})
}

// SetQuantity replaces the quantity; nil clears it.
func (i *Item) SetQuantity(quantity *float64) error {
	if quantity != nil && *quantity < 0 {
		return ErrNegativeQuantity
	}
	i.quantity = quantity
	i.updatedAt = time.Now()
	return nil
}

// addEvent queues a domain event for dispatch.
func (i *Item) addEvent(event shared.DomainEvent) {
	i.events = append(i.events, event)
}

// Events returns and clears pending domain events.
func (i *Item) Events() []shared.DomainEvent {
	events := i.events
	i.events = []shared.DomainEvent{}
	return events
}
