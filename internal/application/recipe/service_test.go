package recipe_test

import (
	"context"
	"encoding/json"
	"testing"

	apprecipe "github.com/fuelapp/v1/internal/application/recipe"
	"github.com/fuelapp/v1/internal/domain/recipe"
	redisrepo "github.com/fuelapp/v1/internal/infrastructure/persistence/redis"
	"github.com/fuelapp/v1/internal/ports/inbound"
	"github.com/fuelapp/v1/pkg/errors"
	"github.com/fuelapp/v1/test/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type RecipeServiceTestSuite struct {
	suite.Suite
	recipeRepo *testutils.MockRecipeRepository
	cache      *testutils.MockCacheRepository
	service    inbound.RecipeService
	ctx        context.Context
	userID     uuid.UUID
	factory    *testutils.Factory
}

func (s *RecipeServiceTestSuite) SetupTest() {
	s.recipeRepo = new(testutils.MockRecipeRepository)
	s.cache = new(testutils.MockCacheRepository)
	s.service = apprecipe.NewRecipeService(s.recipeRepo, s.cache, zap.NewNop())
	s.ctx = context.Background()
	s.userID = uuid.New()
	s.factory = testutils.NewFactory(7)
}

func (s *RecipeServiceTestSuite) saveCommand() inbound.SaveRecipeCommand {
	return inbound.SaveRecipeCommand{
		UserID: s.userID,
		Title:  "Chicken Tikka Masala",
		Ingredients: []inbound.IngredientCommand{
			{Name: "chicken breast", Original: "1 lb chicken breast"},
			{Name: "yogurt", Original: "1 cup yogurt"},
		},
		Servings: 4,
	}
}

func (s *RecipeServiceTestSuite) TestSaveRecipe() {
	s.recipeRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	s.cache.On("Delete", mock.Anything, "recipes:"+s.userID.String()).Return(nil)

	dto, err := s.service.SaveRecipe(s.ctx, s.saveCommand())

	s.Require().NoError(err)
	s.Equal("Chicken Tikka Masala", dto.Title)
	s.Len(dto.Ingredients, 2)
	s.Equal(4, dto.Servings)
	s.cache.AssertCalled(s.T(), "Delete", mock.Anything, "recipes:"+s.userID.String())
}

func (s *RecipeServiceTestSuite) TestSaveRecipeDuplicateExternalID() {
	externalID := int64(715538)
	existing := s.factory.Recipe(s.userID)

	s.recipeRepo.On("FindByExternalID", mock.Anything, s.userID, externalID).
		Return(existing, nil)

	cmd := s.saveCommand()
	cmd.ExternalID = &externalID

	_, err := s.service.SaveRecipe(s.ctx, cmd)

	s.Require().Error(err)
	appErr, ok := err.(*errors.AppError)
	s.Require().True(ok)
	s.Equal(errors.CodeConflict, appErr.Code)
	s.recipeRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *RecipeServiceTestSuite) TestSaveRecipeNewExternalID() {
	externalID := int64(715538)

	s.recipeRepo.On("FindByExternalID", mock.Anything, s.userID, externalID).
		Return(nil, recipe.ErrRecipeNotFound)
	s.recipeRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	s.cache.On("Delete", mock.Anything, mock.Anything).Return(nil)

	cmd := s.saveCommand()
	cmd.ExternalID = &externalID

	dto, err := s.service.SaveRecipe(s.ctx, cmd)

	s.Require().NoError(err)
	s.Require().NotNil(dto.ExternalID)
	s.Equal(externalID, *dto.ExternalID)
}

func (s *RecipeServiceTestSuite) TestSaveRecipeRejectsShortTitle() {
	cmd := s.saveCommand()
	cmd.Title = "ab"

	_, err := s.service.SaveRecipe(s.ctx, cmd)

	s.Require().Error(err)
	s.recipeRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *RecipeServiceTestSuite) TestGetRecipeEnforcesOwnership() {
	rec := s.factory.Recipe(uuid.New())

	s.cache.On("Get", mock.Anything, mock.Anything).Return(nil, redisrepo.ErrCacheMiss)
	s.recipeRepo.On("FindByID", mock.Anything, rec.ID()).Return(rec, nil)

	_, err := s.service.GetRecipe(s.ctx, rec.ID(), s.userID)

	s.Require().Error(err)
	appErr, ok := err.(*errors.AppError)
	s.Require().True(ok)
	s.Equal(errors.CodeForbidden, appErr.Code)
}

func (s *RecipeServiceTestSuite) TestGetRecipeCachesDetail() {
	rec := s.factory.Recipe(s.userID)
	key := "recipe:" + s.userID.String() + ":" + rec.ID().String()

	s.cache.On("Get", mock.Anything, key).Return(nil, redisrepo.ErrCacheMiss)
	s.cache.On("Set", mock.Anything, key, mock.Anything, mock.Anything).Return(nil)
	s.recipeRepo.On("FindByID", mock.Anything, rec.ID()).Return(rec, nil)

	dto, err := s.service.GetRecipe(s.ctx, rec.ID(), s.userID)

	s.Require().NoError(err)
	s.Equal(rec.Title(), dto.Title)
	s.cache.AssertCalled(s.T(), "Set", mock.Anything, key, mock.Anything, mock.Anything)
}

func (s *RecipeServiceTestSuite) TestGetRecipeServedFromCache() {
	rec := s.factory.Recipe(s.userID)
	key := "recipe:" + s.userID.String() + ":" + rec.ID().String()
	cached := inbound.ToRecipeDTO(rec)
	raw, err := json.Marshal(&cached)
	s.Require().NoError(err)

	s.cache.On("Get", mock.Anything, key).Return(raw, nil)

	dto, err := s.service.GetRecipe(s.ctx, rec.ID(), s.userID)

	s.Require().NoError(err)
	s.Equal(rec.Title(), dto.Title)
	s.recipeRepo.AssertNotCalled(s.T(), "FindByID", mock.Anything, mock.Anything)
}

func (s *RecipeServiceTestSuite) TestDeleteRecipe() {
	rec := s.factory.Recipe(s.userID)

	s.recipeRepo.On("FindByID", mock.Anything, rec.ID()).Return(rec, nil)
	s.recipeRepo.On("Delete", mock.Anything, rec.ID(), s.userID).Return(nil)
	s.cache.On("Delete", mock.Anything, mock.Anything).Return(nil)

	err := s.service.DeleteRecipe(s.ctx, rec.ID(), s.userID)

	s.Require().NoError(err)
	s.recipeRepo.AssertCalled(s.T(), "Delete", mock.Anything, rec.ID(), s.userID)
}

func (s *RecipeServiceTestSuite) TestListRecipesDefaultsPagination() {
	recipes := []*recipe.Recipe{s.factory.Recipe(s.userID), s.factory.Recipe(s.userID)}
	key := "recipes:" + s.userID.String()

	s.cache.On("Get", mock.Anything, key).Return(nil, redisrepo.ErrCacheMiss)
	s.cache.On("Set", mock.Anything, key, mock.Anything, mock.Anything).Return(nil)
	s.recipeRepo.On("FindByUser", mock.Anything, s.userID, 0, 20).
		Return(recipes, int64(2), nil)

	list, err := s.service.ListRecipes(s.ctx, s.userID, inbound.PaginationParams{})

	s.Require().NoError(err)
	s.Len(list.Recipes, 2)
	s.Equal(int64(2), list.Total)
	s.Equal(1, list.Page)
	s.Equal(20, list.PerPage)
	s.cache.AssertCalled(s.T(), "Set", mock.Anything, key, mock.Anything, mock.Anything)
}

func (s *RecipeServiceTestSuite) TestListRecipesServedFromCache() {
	key := "recipes:" + s.userID.String()
	cached := &inbound.RecipeList{Total: 3, Page: 1, PerPage: 20}
	raw, err := json.Marshal(cached)
	s.Require().NoError(err)

	s.cache.On("Get", mock.Anything, key).Return(raw, nil)

	list, err := s.service.ListRecipes(s.ctx, s.userID, inbound.PaginationParams{})

	s.Require().NoError(err)
	s.Equal(int64(3), list.Total)
	s.recipeRepo.AssertNotCalled(s.T(), "FindByUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *RecipeServiceTestSuite) TestListRecipesSecondPageBypassesCache() {
	s.recipeRepo.On("FindByUser", mock.Anything, s.userID, 10, 10).
		Return([]*recipe.Recipe{}, int64(12), nil)

	list, err := s.service.ListRecipes(s.ctx, s.userID, inbound.PaginationParams{Page: 2, PerPage: 10})

	s.Require().NoError(err)
	s.Empty(list.Recipes)
	s.Equal(2, list.Page)
	s.cache.AssertNotCalled(s.T(), "Get", mock.Anything, mock.Anything)
}

func TestRecipeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeServiceTestSuite))
}
