// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/fuelapp/v1/internal/domain/grocery"
	"github.com/fuelapp/v1/internal/domain/mealentry"
	"github.com/fuelapp/v1/internal/domain/recipe"
	"github.com/fuelapp/v1/internal/domain/user"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Factory generates domain objects with seeded fake data
type Factory struct {
	faker *gofakeit.Faker
}

// NewFactory creates a factory with a seeded faker for reproducible data
func NewFactory(seed int64) *Factory {
	return &Factory{faker: gofakeit.New(seed)}
}

// User builds a registered user
func (f *Factory) User() *user.User {
	u, err := user.NewUser(
		strings.ToLower(f.faker.Email()),
		f.faker.Name(),
		"password123",
		bcrypt.MinCost,
	)
	if err != nil {
		panic(fmt.Sprintf("factory user: %v", err))
	}
	return u
}

// Recipe builds a saved recipe with a few ingredients
func (f *Factory) Recipe(userID uuid.UUID) *recipe.Recipe {
	ingredients := []recipe.Ingredient{
		f.Ingredient("2 cups flour"),
		f.Ingredient("1 lb chicken breast"),
		f.Ingredient("salt to taste"),
	}

	r, err := recipe.NewRecipe(userID, f.faker.Dinner(), ingredients)
	if err != nil {
		panic(fmt.Sprintf("factory recipe: %v", err))
	}
	return r
}

// Ingredient builds a recipe ingredient from its original line
func (f *Factory) Ingredient(original string) recipe.Ingredient {
	parsed := grocery.ParseIngredient(original)
	return recipe.Ingredient{
		Name:     parsed.Name,
		Amount:   parsed.Quantity,
		Unit:     parsed.Unit,
		Original: original,
	}
}

// GroceryItem builds an unchecked grocery item
func (f *Factory) GroceryItem(userID uuid.UUID, name string, quantity *float64, unit *string) *grocery.Item {
	item, err := grocery.NewItem(userID, name, quantity, unit, grocery.Categorize(name))
	if err != nil {
		panic(fmt.Sprintf("factory grocery item: %v", err))
	}
	return item
}

// CheckedGroceryItem builds a grocery item already marked as purchased
func (f *Factory) CheckedGroceryItem(userID uuid.UUID, name string) *grocery.Item {
	now := time.Now()
	return grocery.Reconstitute(
		uuid.New(), userID,
		strings.ToLower(name),
		nil, nil,
		grocery.Categorize(name),
		true,
		nil, "",
		now, now,
	)
}

// MealEntry builds a logged meal entry
func (f *Factory) MealEntry(userID uuid.UUID, mealType mealentry.MealType, loggedAt time.Time) *mealentry.Entry {
	e, err := mealentry.NewEntry(
		userID,
		f.faker.Lunch(),
		mealType,
		mealentry.Macros{Calories: 450, Protein: 30, Carbs: 40, Fat: 15},
		mealentry.SourceManual,
		loggedAt,
	)
	if err != nil {
		panic(fmt.Sprintf("factory meal entry: %v", err))
	}
	return e
}

// Float64Ptr returns a pointer to the given float
func Float64Ptr(v float64) *float64 { return &v }

// StringPtr returns a pointer to the given string
func StringPtr(s string) *string { return &s }
