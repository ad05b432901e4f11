// Package gorm provides GORM-based repository implementations
package gorm

import (
	"context"
	"errors"
	"strings"

	"github.com/fuelapp/v1/internal/domain/grocery"
	"github.com/fuelapp/v1/internal/ports/outbound"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GroceryRepository implements the grocery repository interface using GORM
type GroceryRepository struct {
	db *gorm.DB
}

// NewGroceryRepository creates a new grocery repository
func NewGroceryRepository(db *gorm.DB) outbound.GroceryRepository {
	return &GroceryRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle.
func (r *GroceryRepository) WithTx(tx any) outbound.GroceryRepository {
	if db, ok := tx.(*gorm.DB); ok {
		return &GroceryRepository{db: db}
	}
	return r
}

// Create creates a new grocery item
func (r *GroceryRepository) Create(ctx context.Context, item *grocery.Item) error {
	model := GroceryItemToModel(item)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing grocery item
func (r *GroceryRepository) Update(ctx context.Context, item *grocery.Item) error {
	model := GroceryItemToModel(item)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return grocery.ErrItemNotFound
	}
	return nil
}

// Delete deletes a grocery item scoped to its owner
func (r *GroceryRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&GroceryItemModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return grocery.ErrItemNotFound
	}
	return nil
}

// FindByID finds a grocery item scoped to its owner
func (r *GroceryRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*grocery.Item, error) {
	var model GroceryItemModel

	result := r.db.WithContext(ctx).
		First(&model, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, grocery.ErrItemNotFound
		}
		return nil, result.Error
	}

	return ModelToGroceryItem(&model), nil
}

// FindByUser returns the user's full list, ordered by category then
// creation time so the client can render aisle groups directly
func (r *GroceryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*grocery.Item, error) {
	var models []GroceryItemModel

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("category ASC, created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*grocery.Item, 0, len(models))
	for i := range models {
		items = append(items, ModelToGroceryItem(&models[i]))
	}
	return items, nil
}

// FindUncheckedByName looks up an unchecked item by its normalized name.
// Inside a transaction the row is locked for update so concurrent imports
// serialize on it instead of creating duplicates.
func (r *GroceryRepository) FindUncheckedByName(ctx context.Context, userID uuid.UUID, name string) (*grocery.Item, error) {
	var model GroceryItemModel

	tx := r.db.WithContext(ctx)
	// SQLite serializes writers on its own and rejects FOR UPDATE.
	if tx.Dialector.Name() == "postgres" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	result := tx.
		Where("user_id = ? AND name = ? AND checked = ?", userID, strings.ToLower(name), false).
		First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, grocery.ErrItemNotFound
		}
		return nil, result.Error
	}

	return ModelToGroceryItem(&model), nil
}

// DeleteChecked removes every checked item on the user's list
func (r *GroceryRepository) DeleteChecked(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND checked = ?", userID, true).
		Delete(&GroceryItemModel{})
	return result.RowsAffected, result.Error
}
