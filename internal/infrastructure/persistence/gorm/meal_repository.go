package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/fuelapp/v1/internal/domain/mealentry"
	"github.com/fuelapp/v1/internal/ports/outbound"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealRepository implements the meal repository interface using GORM
type MealRepository struct {
	db *gorm.DB
}

// NewMealRepository creates a new meal repository
func NewMealRepository(db *gorm.DB) outbound.MealRepository {
	return &MealRepository{db: db}
}

// Create creates a new meal entry
func (r *MealRepository) Create(ctx context.Context, e *mealentry.Entry) error {
	model := MealEntryToModel(e)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing meal entry
func (r *MealRepository) Update(ctx context.Context, e *mealentry.Entry) error {
	model := MealEntryToModel(e)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return mealentry.ErrEntryNotFound
	}
	return nil
}

// Delete deletes a meal entry scoped to its owner
func (r *MealRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&MealEntryModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return mealentry.ErrEntryNotFound
	}
	return nil
}

// FindByID finds a meal entry scoped to its owner
func (r *MealRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*mealentry.Entry, error) {
	var model MealEntryModel

	result := r.db.WithContext(ctx).
		First(&model, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, mealentry.ErrEntryNotFound
		}
		return nil, result.Error
	}

	return ModelToMealEntry(&model), nil
}

// FindByDay returns entries logged within [dayStart, dayEnd), oldest first
func (r *MealRepository) FindByDay(ctx context.Context, userID uuid.UUID, dayStart, dayEnd time.Time) ([]*mealentry.Entry, error) {
	var models []MealEntryModel

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, dayStart, dayEnd).
		Order("logged_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*mealentry.Entry, 0, len(models))
	for i := range models {
		entries = append(entries, ModelToMealEntry(&models[i]))
	}
	return entries, nil
}
