package grocery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		expected Category
	}{
		{"spinach", CategoryProduce},
		{"greek yogurt", CategoryDairy},
		{"chicken breast", CategoryMeat},
		{"sourdough bread", CategoryBakery},
		{"olive oil", CategoryPantry},
		{"frozen peas", CategoryProduce}, // "peas" hits Produce before Frozen
		{"ice cream", CategoryDairy},     // "cream" hits Dairy before Frozen
		{"kombucha", CategoryBeverages},
		{"tortilla chips", CategoryBakery}, // "tortilla" hits Bakery before Snacks
		{"sriracha", CategoryCondiments},
		{"xyz123", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Categorize(tt.name))
		})
	}
}

func TestCategorize_CaseInsensitive(t *testing.T) {
	assert.Equal(t, CategoryProduce, Categorize("SPINACH"))
	assert.Equal(t, CategoryProduce, Categorize("  Spinach  "))
}

func TestCategorize_SubstringContainment(t *testing.T) {
	// Containment is deliberate: "apple" matches inside "pineapple", and
	// both land in Produce. First category in declaration order wins.
	assert.Equal(t, CategoryProduce, Categorize("pineapple"))
	assert.Equal(t, CategoryProduce, Categorize("apple juice")) // Produce before Beverages
}

func TestCategorize_Idempotent(t *testing.T) {
	for _, name := range []string{"spinach", "milk", "xyz123"} {
		first := Categorize(name)
		second := Categorize(name)
		assert.Equal(t, first, second)
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, ValidCategory(string(c)))
	}
	assert.False(t, ValidCategory("Hardware"))
	assert.False(t, ValidCategory(""))
}
