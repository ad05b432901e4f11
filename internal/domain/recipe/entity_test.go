package recipe_test

import (
	"testing"

	"github.com/fuelapp/v1/internal/domain/recipe"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RecipeTestSuite struct {
	suite.Suite
	userID uuid.UUID
}

func (s *RecipeTestSuite) SetupTest() {
	s.userID = uuid.New()
}

func TestRecipeSuite(t *testing.T) {
	suite.Run(t, new(RecipeTestSuite))
}

func (s *RecipeTestSuite) TestNewRecipe() {
	s.Run("valid recipe", func() {
		amount := 2.0
		unit := "cups"
		ings := []recipe.Ingredient{
			{Name: "flour", Amount: &amount, Unit: &unit, Original: "2 cups flour"},
			{Name: "salt", Original: "a pinch of salt"},
		}

		r, err := recipe.NewRecipe(s.userID, "Simple Bread", ings)
		require.NoError(s.T(), err)

		assert.NotEqual(s.T(), uuid.Nil, r.ID())
		assert.Equal(s.T(), s.userID, r.UserID())
		assert.Equal(s.T(), "Simple Bread", r.Title())
		assert.Len(s.T(), r.Ingredients(), 2)
		assert.Equal(s.T(), 1, r.Servings())
		assert.False(s.T(), r.IsAIGenerated())

		events := r.Events()
		require.Len(s.T(), events, 1)
		assert.Equal(s.T(), "recipe.saved", events[0].EventName())
	})

	s.Run("title too short", func() {
		_, err := recipe.NewRecipe(s.userID, "ab", nil)
		assert.ErrorIs(s.T(), err, recipe.ErrTitleTooShort)
	})

	s.Run("blank ingredient name", func() {
		_, err := recipe.NewRecipe(s.userID, "Valid Title", []recipe.Ingredient{{Name: "  "}})
		assert.ErrorIs(s.T(), err, recipe.ErrIngredientNameEmpty)
	})

	s.Run("negative ingredient amount", func() {
		amount := -1.0
		_, err := recipe.NewRecipe(s.userID, "Valid Title", []recipe.Ingredient{
			{Name: "flour", Amount: &amount},
		})
		assert.ErrorIs(s.T(), err, recipe.ErrIngredientAmountNegative)
	})
}

func (s *RecipeTestSuite) TestSetDetails() {
	r, err := recipe.NewRecipe(s.userID, "Pasta Night", nil)
	require.NoError(s.T(), err)

	r.SetDetails("Quick weeknight pasta", "https://img.example/p.jpg", "https://example.com/pasta", "Boil. Toss. Serve.", 25, 4)

	assert.Equal(s.T(), "Quick weeknight pasta", r.Summary())
	assert.Equal(s.T(), 25, r.ReadyInMinutes())
	assert.Equal(s.T(), 4, r.Servings())

	// Zero values leave timing and servings untouched.
	r.SetDetails("", "", "", "", 0, 0)
	assert.Equal(s.T(), 25, r.ReadyInMinutes())
	assert.Equal(s.T(), 4, r.Servings())
}

func (s *RecipeTestSuite) TestSetNutritionAndTags() {
	r, err := recipe.NewRecipe(s.userID, "Protein Bowl", nil)
	require.NoError(s.T(), err)

	assert.True(s.T(), r.Nutrition().IsZero())

	r.SetNutrition(recipe.Nutrition{Calories: 520, Protein: 42, Carbs: 38, Fat: 20})
	assert.False(s.T(), r.Nutrition().IsZero())
	assert.Equal(s.T(), 42.0, r.Nutrition().Protein)

	r.SetTags([]string{"mediterranean"}, []string{"high-protein"})
	assert.Equal(s.T(), []string{"mediterranean"}, r.Cuisines())
	assert.Equal(s.T(), []string{"high-protein"}, r.Diets())
}

func (s *RecipeTestSuite) TestIngredientLine() {
	i := recipe.Ingredient{Name: "olive oil", Original: "2 tbsp olive oil"}
	assert.Equal(s.T(), "2 tbsp olive oil", i.Line())

	i = recipe.Ingredient{Name: "olive oil"}
	assert.Equal(s.T(), "olive oil", i.Line())
}
