package recipe

import "strings"

// Ingredient is a single ingredient record on a saved recipe. Amount and
// Unit are optional because external sources often provide only the
// original free-text line.
type Ingredient struct {
	Name     string
	Amount   *float64
	Unit     *string
	Original string
}

// Validate checks the ingredient record for structural problems.
func (i Ingredient) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrIngredientNameEmpty
	}
	if i.Amount != nil && *i.Amount < 0 {
		return ErrIngredientAmountNegative
	}
	return nil
}

// Line returns the best display form of the ingredient: the original
// free-text line when present, otherwise the structured name.
func (i Ingredient) Line() string {
	if i.Original != "" {
		return i.Original
	}
	return i.Name
}

// Nutrition is a per-serving macro estimate. All values are optional
// because not every source reports the full panel.
type Nutrition struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
	Sugar    float64
}

// IsZero reports whether no nutrition data is present.
func (n Nutrition) IsZero() bool {
	return n == Nutrition{}
}
