// Package gorm provides GORM model definitions for the application
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel represents the GORM model for users
type UserModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	IsActive     bool      `gorm:"default:true"`
	Role         string    `gorm:"type:varchar(50);default:'user'"`

	// Daily macro targets, null until the user sets them.
	GoalCalories *float64
	GoalProtein  *float64
	GoalCarbs    *float64
	GoalFat      *float64

	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastLoginAt *time.Time

	// Relationships
	Recipes      []RecipeModel      `gorm:"foreignKey:UserID"`
	GroceryItems []GroceryItemModel `gorm:"foreignKey:UserID"`
	MealEntries  []MealEntryModel   `gorm:"foreignKey:UserID"`
}

// RecipeModel represents the GORM model for saved recipes
type RecipeModel struct {
	ID         uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID     uuid.UUID `gorm:"type:char(36);not null;index"`
	Title      string    `gorm:"type:varchar(255);not null;index"`
	Summary    string    `gorm:"type:text"`
	ExternalID *int64    `gorm:"index"`

	ImageURL       string `gorm:"type:text"`
	SourceURL      string `gorm:"type:text"`
	ReadyInMinutes int    `gorm:"default:0"`
	Servings       int    `gorm:"default:1"`

	Instructions string          `gorm:"type:text"`
	Ingredients  IngredientsJSON `gorm:"type:json"`

	// Per-serving nutrition estimate
	Calories float64 `gorm:"default:0"`
	Protein  float64 `gorm:"default:0"`
	Carbs    float64 `gorm:"default:0"`
	Fat      float64 `gorm:"default:0"`
	Fiber    float64 `gorm:"default:0"`
	Sugar    float64 `gorm:"default:0"`

	Cuisines StringSlice `gorm:"type:json"`
	Diets    StringSlice `gorm:"type:json"`

	AIGenerated bool `gorm:"default:false"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// GroceryItemModel represents the GORM model for grocery list items.
// Name is stored lowercased; the merge policy looks rows up by
// (user_id, name, checked).
type GroceryItemModel struct {
	ID       uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID   uuid.UUID `gorm:"type:char(36);not null;index:idx_grocery_user_name,priority:1"`
	Name     string    `gorm:"type:varchar(255);not null;index:idx_grocery_user_name,priority:2"`
	Quantity *float64
	Unit     *string `gorm:"type:varchar(50)"`
	Category string  `gorm:"type:varchar(50);not null"`
	Checked  bool    `gorm:"default:false;index"`

	// Provenance for recipe imports
	RecipeID    *uuid.UUID `gorm:"type:char(36);index"`
	RecipeTitle string     `gorm:"type:varchar(255)"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// MealEntryModel represents the GORM model for logged foods
type MealEntryModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID      uuid.UUID `gorm:"type:char(36);not null;index:idx_meal_user_logged,priority:1"`
	Description string    `gorm:"type:text;not null"`
	MealType    string    `gorm:"type:varchar(20);not null;index"`
	Source      string    `gorm:"type:varchar(20);default:'manual'"`
	Confidence  *float64

	Calories float64 `gorm:"default:0"`
	Protein  float64 `gorm:"default:0"`
	Carbs    float64 `gorm:"default:0"`
	Fat      float64 `gorm:"default:0"`
	Fiber    float64 `gorm:"default:0"`
	Sugar    float64 `gorm:"default:0"`

	LoggedAt  time.Time `gorm:"not null;index:idx_meal_user_logged,priority:2"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides
func (UserModel) TableName() string        { return "users" }
func (RecipeModel) TableName() string      { return "recipes" }
func (GroceryItemModel) TableName() string { return "grocery_items" }
func (MealEntryModel) TableName() string   { return "meal_entries" }

// IngredientRecord is the JSON shape of one stored ingredient.
type IngredientRecord struct {
	Name     string   `json:"name"`
	Amount   *float64 `json:"amount,omitempty"`
	Unit     *string  `json:"unit,omitempty"`
	Original string   `json:"original,omitempty"`
}

// IngredientsJSON custom type for the ingredients column
type IngredientsJSON []IngredientRecord

// Scan implements the sql.Scanner interface
func (i *IngredientsJSON) Scan(value interface{}) error {
	if value == nil {
		*i = IngredientsJSON{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, i)
	case string:
		return json.Unmarshal([]byte(v), i)
	default:
		return fmt.Errorf("cannot scan %T into IngredientsJSON", value)
	}
}

// Value implements the driver.Valuer interface
func (i IngredientsJSON) Value() (driver.Value, error) {
	if len(i) == 0 {
		return "[]", nil
	}
	return json.Marshal(i)
}

// StringSlice custom type for handling string arrays in JSON columns
type StringSlice []string

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// BeforeCreate hook for UserModel
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for RecipeModel
func (r *RecipeModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for GroceryItemModel
func (g *GroceryItemModel) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for MealEntryModel
func (m *MealEntryModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// AllModels returns every model for auto-migration.
func AllModels() []interface{} {
	return []interface{}{
		&UserModel{},
		&RecipeModel{},
		&GroceryItemModel{},
		&MealEntryModel{},
	}
}
