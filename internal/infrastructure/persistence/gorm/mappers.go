// Package gorm provides mapping between domain entities and GORM models
package gorm

import (
	"github.com/fuelapp/v1/internal/domain/grocery"
	"github.com/fuelapp/v1/internal/domain/mealentry"
	"github.com/fuelapp/v1/internal/domain/recipe"
	"github.com/fuelapp/v1/internal/domain/user"
)

// UserToModel converts a domain user to a GORM model
func UserToModel(u *user.User) *UserModel {
	model := &UserModel{
		ID:           u.ID(),
		Email:        u.Email(),
		Name:         u.Name(),
		PasswordHash: u.PasswordHash(),
		IsActive:     u.IsActive(),
		Role:         string(u.Role()),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
		LastLoginAt:  u.LastLoginAt(),
	}

	if g := u.Goals(); g != nil {
		model.GoalCalories = &g.Calories
		model.GoalProtein = &g.Protein
		model.GoalCarbs = &g.Carbs
		model.GoalFat = &g.Fat
	}

	return model
}

// ModelToUser converts a GORM model to a domain user
func ModelToUser(m *UserModel) *user.User {
	var goals *user.MacroGoals
	if m.GoalCalories != nil || m.GoalProtein != nil || m.GoalCarbs != nil || m.GoalFat != nil {
		goals = &user.MacroGoals{}
		if m.GoalCalories != nil {
			goals.Calories = *m.GoalCalories
		}
		if m.GoalProtein != nil {
			goals.Protein = *m.GoalProtein
		}
		if m.GoalCarbs != nil {
			goals.Carbs = *m.GoalCarbs
		}
		if m.GoalFat != nil {
			goals.Fat = *m.GoalFat
		}
	}

	return user.Reconstitute(
		m.ID,
		m.Email,
		m.Name,
		m.PasswordHash,
		m.IsActive,
		user.Role(m.Role),
		goals,
		m.CreatedAt,
		m.UpdatedAt,
		m.LastLoginAt,
	)
}

// RecipeToModel converts a domain recipe to a GORM model
func RecipeToModel(r *recipe.Recipe) *RecipeModel {
	ingredients := make(IngredientsJSON, 0, len(r.Ingredients()))
	for _, ing := range r.Ingredients() {
		ingredients = append(ingredients, IngredientRecord{
			Name:     ing.Name,
			Amount:   ing.Amount,
			Unit:     ing.Unit,
			Original: ing.Original,
		})
	}

	n := r.Nutrition()
	return &RecipeModel{
		ID:             r.ID(),
		UserID:         r.UserID(),
		Title:          r.Title(),
		Summary:        r.Summary(),
		ExternalID:     r.ExternalID(),
		ImageURL:       r.ImageURL(),
		SourceURL:      r.SourceURL(),
		ReadyInMinutes: r.ReadyInMinutes(),
		Servings:       r.Servings(),
		Instructions:   r.Instructions(),
		Ingredients:    ingredients,
		Calories:       n.Calories,
		Protein:        n.Protein,
		Carbs:          n.Carbs,
		Fat:            n.Fat,
		Fiber:          n.Fiber,
		Sugar:          n.Sugar,
		Cuisines:       StringSlice(r.Cuisines()),
		Diets:          StringSlice(r.Diets()),
		AIGenerated:    r.IsAIGenerated(),
		CreatedAt:      r.CreatedAt(),
		UpdatedAt:      r.UpdatedAt(),
	}
}

// ModelToRecipe converts a GORM model to a domain recipe
func ModelToRecipe(m *RecipeModel) *recipe.Recipe {
	ingredients := make([]recipe.Ingredient, 0, len(m.Ingredients))
	for _, ing := range m.Ingredients {
		ingredients = append(ingredients, recipe.Ingredient{
			Name:     ing.Name,
			Amount:   ing.Amount,
			Unit:     ing.Unit,
			Original: ing.Original,
		})
	}

	return recipe.Reconstitute(
		m.ID,
		m.UserID,
		m.Title,
		m.Summary,
		m.ExternalID,
		m.ImageURL,
		m.SourceURL,
		m.ReadyInMinutes,
		m.Servings,
		m.Instructions,
		ingredients,
		recipe.Nutrition{
			Calories: m.Calories,
			Protein:  m.Protein,
			Carbs:    m.Carbs,
			Fat:      m.Fat,
			Fiber:    m.Fiber,
			Sugar:    m.Sugar,
		},
		m.Cuisines,
		m.Diets,
		m.AIGenerated,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

// GroceryItemToModel converts a domain grocery item to a GORM model
func GroceryItemToModel(item *grocery.Item) *GroceryItemModel {
	return &GroceryItemModel{
		ID:          item.ID(),
		UserID:      item.UserID(),
		Name:        item.Name(),
		Quantity:    item.Quantity(),
		Unit:        item.Unit(),
		Category:    string(item.Category()),
		Checked:     item.Checked(),
		RecipeID:    item.RecipeID(),
		RecipeTitle: item.RecipeTitle(),
		CreatedAt:   item.CreatedAt(),
		UpdatedAt:   item.UpdatedAt(),
	}
}

// ModelToGroceryItem converts a GORM model to a domain grocery item
func ModelToGroceryItem(m *GroceryItemModel) *grocery.Item {
	return grocery.Reconstitute(
		m.ID,
		m.UserID,
		m.Name,
		m.Quantity,
		m.Unit,
		grocery.Category(m.Category),
		m.Checked,
		m.RecipeID,
		m.RecipeTitle,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

// MealEntryToModel converts a domain meal entry to a GORM model
func MealEntryToModel(e *mealentry.Entry) *MealEntryModel {
	m := e.Macros()
	return &MealEntryModel{
		ID:          e.ID(),
		UserID:      e.UserID(),
		Description: e.Description(),
		MealType:    string(e.MealType()),
		Source:      string(e.Source()),
		Confidence:  e.Confidence(),
		Calories:    m.Calories,
		Protein:     m.Protein,
		Carbs:       m.Carbs,
		Fat:         m.Fat,
		Fiber:       m.Fiber,
		Sugar:       m.Sugar,
		LoggedAt:    e.LoggedAt(),
		CreatedAt:   e.CreatedAt(),
		UpdatedAt:   e.UpdatedAt(),
	}
}

// ModelToMealEntry converts a GORM model to a domain meal entry
func ModelToMealEntry(m *MealEntryModel) *mealentry.Entry {
	return mealentry.Reconstitute(
		m.ID,
		m.UserID,
		m.Description,
		mealentry.MealType(m.MealType),
		mealentry.Macros{
			Calories: m.Calories,
			Protein:  m.Protein,
			Carbs:    m.Carbs,
			Fat:      m.Fat,
			Fiber:    m.Fiber,
			Sugar:    m.Sugar,
		},
		mealentry.Source(m.Source),
		m.Confidence,
		m.LoggedAt,
		m.CreatedAt,
		m.UpdatedAt,
	)
}
