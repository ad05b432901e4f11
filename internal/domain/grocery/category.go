// Package grocery contains the core domain logic for the grocery list:
// ingredient line parsing, aisle categorization, and the GroceryItem
// aggregate. Categorization is best-effort shelf-grouping by substring
// containment ("apple" matches inside "pineapple"), trading precision
// for a zero-maintenance lexicon.
package grocery

import "strings"

// Category is one of the ten grocery-aisle categories.
type Category string

const (
	CategoryProduce    Category = "Produce"
	CategoryDairy      Category = "Dairy"
	CategoryMeat       Category = "Meat & Seafood"
	CategoryBakery     Category = "Bakery"
	CategoryPantry     Category = "Pantry"
	CategoryFrozen     Category = "Frozen"
	CategoryBeverages  Category = "Beverages"
	CategorySnacks     Category = "Snacks"
	CategoryCondiments Category = "Condiments"
	CategoryOther      Category = "Other"
)

// Categories lists every category in classification order. "Other" is last
// and never keyword-matched; it is the fallback.
var Categories = []Category{
	CategoryProduce,
	CategoryDairy,
	CategoryMeat,
	CategoryBakery,
	CategoryPantry,
	CategoryFrozen,
	CategoryBeverages,
	CategorySnacks,
	CategoryCondiments,
	CategoryOther,
}

// ValidCategory reports whether s names a known category.
func ValidCategory(s string) bool {
	for _, c := range Categories {
		if string(c) == s {
			return true
		}
	}
	return false
}

var categoryKeywords = map[Category][]string{
	CategoryProduce: {
		"apple", "banana", "orange", "lemon", "lime", "grape", "berry", "berries",
		"tomato", "tomatoes", "cucumber", "lettuce", "spinach", "kale", "arugula",
		"broccoli", "cauliflower", "carrot", "carrots", "celery", "onion", "onions",
		"garlic", "ginger", "pepper", "peppers", "zucchini", "squash", "potato",
		"potatoes", "sweet potato", "mushroom", "mushrooms", "avocado", "mango",
		"pineapple", "strawberry", "blueberry", "raspberry", "peach", "pear",
		"watermelon", "melon", "corn", "peas", "green beans", "asparagus", "artichoke",
		"beet", "beets", "radish", "leek", "shallot", "herbs", "basil", "cilantro",
		"parsley", "mint", "thyme", "rosemary", "sage", "dill", "scallion",
	},
	CategoryDairy: {
		"milk", "cream", "half and half", "butter", "cheese", "cheddar", "mozzarella",
		"parmesan", "feta", "brie", "gouda", "swiss", "yogurt", "greek yogurt",
		"sour cream", "cream cheese", "cottage cheese", "ricotta", "whipped cream",
		"heavy cream", "almond milk", "oat milk", "soy milk",
	},
	CategoryMeat: {
		"chicken", "beef", "steak", "ground beef", "pork", "bacon", "ham", "sausage",
		"turkey", "lamb", "veal", "duck", "salmon", "tuna", "tilapia", "cod",
		"shrimp", "lobster", "crab", "scallop", "fish", "seafood", "meatball",
		"chicken breast", "chicken thigh", "ground turkey", "hot dog",
	},
	CategoryBakery: {
		"bread", "baguette", "roll", "bun", "bagel", "muffin", "croissant",
		"tortilla", "wrap", "pita", "naan", "sourdough", "brioche", "rye",
		"whole wheat bread", "english muffin",
	},
	CategoryPantry: {
		"rice", "pasta", "noodle", "quinoa", "oats", "oatmeal", "flour", "sugar",
		"salt", "pepper", "oil", "olive oil", "vegetable oil", "coconut oil",
		"vinegar", "soy sauce", "hot sauce", "ketchup", "mustard", "mayo",
		"mayonnaise", "honey", "maple syrup", "vanilla", "baking powder", "baking soda",
		"yeast", "cornstarch", "almond flour", "breadcrumbs", "panko", "beans",
		"lentils", "chickpeas", "black beans", "kidney beans", "canned tomatoes",
		"tomato paste", "chicken broth", "beef broth", "vegetable broth", "coconut milk",
		"peanut butter", "almond butter", "tahini", "jam", "jelly", "cereal",
		"granola", "protein powder", "nuts", "almonds", "walnuts", "cashews",
		"peanuts", "seeds", "chia", "flax", "sunflower", "pumpkin seeds",
	},
	CategoryFrozen: {
		"frozen", "ice cream", "popsicle", "frozen vegetables", "frozen fruit",
		"frozen pizza", "edamame", "frozen peas", "frozen corn",
	},
	CategoryBeverages: {
		"juice", "water", "sparkling water", "soda", "coffee", "tea", "energy drink",
		"sports drink", "kombucha", "wine", "beer", "almond milk",
	},
	CategorySnacks: {
		"chip", "chips", "cracker", "crackers", "popcorn", "pretzel", "pretzels",
		"cookie", "cookies", "chocolate", "candy", "gummy", "bar", "protein bar",
		"granola bar", "rice cake",
	},
	CategoryCondiments: {
		"dressing", "salsa", "guacamole", "relish", "worcestershire", "oyster sauce",
		"fish sauce", "sriracha", "tabasco", "bbq sauce", "teriyaki", "aioli",
		"hummus", "tzatziki",
	},
}

// Categorize maps a food name to exactly one aisle category. Categories are
// tested in declaration order and the first whose keyword list yields a
// substring match wins; no match yields CategoryOther. Pure and total.
func Categorize(name string) Category {
	lower := strings.ToLower(strings.TrimSpace(name))

	for _, category := range Categories {
		if category == CategoryOther {
			continue
		}
		for _, kw := range categoryKeywords[category] {
			if strings.Contains(lower, kw) {
				return category
			}
		}
	}

	return CategoryOther
}
