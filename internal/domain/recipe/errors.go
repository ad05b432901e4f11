package recipe

import "errors"

var (
	// ErrTitleTooShort is returned when a recipe title is under 3 characters.
	ErrTitleTooShort = errors.New("recipe title must be at least 3 characters")

	// ErrTitleTooLong is returned when a recipe title exceeds 200 characters.
	ErrTitleTooLong = errors.New("recipe title must not exceed 200 characters")

	// ErrIngredientNameEmpty is returned when an ingredient has a blank name.
	ErrIngredientNameEmpty = errors.New("ingredient name cannot be empty")

	// ErrIngredientAmountNegative is returned for a negative ingredient amount.
	ErrIngredientAmountNegative = errors.New("ingredient amount cannot be negative")

	// ErrRecipeNotFound is returned when the requested recipe does not exist.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrRecipeAlreadySaved is returned when the user already saved the
	// same external recipe.
	ErrRecipeAlreadySaved = errors.New("recipe already saved")
)
