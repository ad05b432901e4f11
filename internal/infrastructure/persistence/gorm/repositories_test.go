package gorm_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fuelapp/v1/internal/domain/grocery"
	"github.com/fuelapp/v1/internal/domain/mealentry"
	"github.com/fuelapp/v1/internal/domain/recipe"
	"github.com/fuelapp/v1/internal/domain/user"
	gormrepo "github.com/fuelapp/v1/internal/infrastructure/persistence/gorm"
	"github.com/fuelapp/v1/internal/ports/outbound"
	"github.com/fuelapp/v1/test/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	userID  uuid.UUID
	factory *testutils.Factory

	groceryRepo outbound.GroceryRepository
	recipeRepo  outbound.RecipeRepository
	mealRepo    outbound.MealRepository
	userRepo    outbound.UserRepository
	txManager   outbound.TransactionManager
}

func (s *RepositoryTestSuite) SetupTest() {
	db := testutils.SetupTestDatabase(s.T())
	s.ctx = context.Background()
	s.userID = uuid.New()
	s.factory = testutils.NewFactory(11)

	s.groceryRepo = gormrepo.NewGroceryRepository(db)
	s.recipeRepo = gormrepo.NewRecipeRepository(db)
	s.mealRepo = gormrepo.NewMealRepository(db)
	s.userRepo = gormrepo.NewUserRepository(db)
	s.txManager = gormrepo.NewTransactionManager(db)
}

func (s *RepositoryTestSuite) TestGroceryCreateAndFind() {
	item := s.factory.GroceryItem(s.userID, "flour", testutils.Float64Ptr(2), testutils.StringPtr("cup"))
	s.Require().NoError(s.groceryRepo.Create(s.ctx, item))

	found, err := s.groceryRepo.FindByID(s.ctx, item.ID(), s.userID)
	s.Require().NoError(err)
	s.Equal("flour", found.Name())
	s.Require().NotNil(found.Quantity())
	s.Equal(2.0, *found.Quantity())
	s.Equal("cup", *found.Unit())
}

func (s *RepositoryTestSuite) TestGroceryFindScopedToOwner() {
	item := s.factory.GroceryItem(s.userID, "flour", nil, nil)
	s.Require().NoError(s.groceryRepo.Create(s.ctx, item))

	_, err := s.groceryRepo.FindByID(s.ctx, item.ID(), uuid.New())
	s.Equal(grocery.ErrItemNotFound, err)
}

func (s *RepositoryTestSuite) TestGroceryListOrdersByCategoryThenAge() {
	// Inserted out of aisle order: flour and rice are Pantry, spinach is
	// Produce. The list comes back grouped by category, oldest row first
	// within each group.
	flour := s.factory.GroceryItem(s.userID, "flour", nil, nil)
	s.Require().NoError(s.groceryRepo.Create(s.ctx, flour))
	spinach := s.factory.GroceryItem(s.userID, "spinach", nil, nil)
	s.Require().NoError(s.groceryRepo.Create(s.ctx, spinach))
	rice := s.factory.GroceryItem(s.userID, "rice", nil, nil)
	s.Require().NoError(s.groceryRepo.Create(s.ctx, rice))

	items, err := s.groceryRepo.FindByUser(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(items, 3)
	s.Equal("flour", items[0].Name())
	s.Equal("rice", items[1].Name())
	s.Equal("spinach", items[2].Name())
}

func (s *RepositoryTestSuite) TestFindUncheckedByNameIgnoresCheckedRows() {
	checked := s.factory.CheckedGroceryItem(s.userID, "milk")
	s.Require().NoError(s.groceryRepo.Create(s.ctx, checked))

	_, err := s.groceryRepo.FindUncheckedByName(s.ctx, s.userID, "milk")
	s.Equal(grocery.ErrItemNotFound, err)

	unchecked := s.factory.GroceryItem(s.userID, "milk", testutils.Float64Ptr(1), testutils.StringPtr("L"))
	s.Require().NoError(s.groceryRepo.Create(s.ctx, unchecked))

	found, err := s.groceryRepo.FindUncheckedByName(s.ctx, s.userID, "milk")
	s.Require().NoError(err)
	s.Equal(unchecked.ID(), found.ID())
	s.False(found.Checked())
}

func (s *RepositoryTestSuite) TestDeleteCheckedCountsRows() {
	s.Require().NoError(s.groceryRepo.Create(s.ctx, s.factory.CheckedGroceryItem(s.userID, "milk")))
	s.Require().NoError(s.groceryRepo.Create(s.ctx, s.factory.CheckedGroceryItem(s.userID, "eggs")))
	s.Require().NoError(s.groceryRepo.Create(s.ctx, s.factory.GroceryItem(s.userID, "flour", nil, nil)))

	removed, err := s.groceryRepo.DeleteChecked(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Equal(int64(2), removed)

	remaining, err := s.groceryRepo.FindByUser(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Len(remaining, 1)
	s.Equal("flour", remaining[0].Name())
}

func (s *RepositoryTestSuite) TestGroceryUpdateInsideTransaction() {
	item := s.factory.GroceryItem(s.userID, "flour", testutils.Float64Ptr(1), testutils.StringPtr("cup"))
	s.Require().NoError(s.groceryRepo.Create(s.ctx, item))

	err := s.txManager.Transact(s.ctx, func(tx any) error {
		repo := s.groceryRepo.WithTx(tx)
		found, err := repo.FindUncheckedByName(s.ctx, s.userID, "flour")
		if err != nil {
			return err
		}
		found.AbsorbQuantity(2)
		return repo.Update(s.ctx, found)
	})
	s.Require().NoError(err)

	found, err := s.groceryRepo.FindByID(s.ctx, item.ID(), s.userID)
	s.Require().NoError(err)
	s.Equal(3.0, *found.Quantity())
}

func (s *RepositoryTestSuite) TestRecipeRoundTrip() {
	rec := s.factory.Recipe(s.userID)
	rec.SetDetails("weeknight favorite", "", "", "mix and cook", 25, 4)
	rec.SetTags([]string{"italian"}, []string{"high-protein"})

	s.Require().NoError(s.recipeRepo.Create(s.ctx, rec))

	found, err := s.recipeRepo.FindByID(s.ctx, rec.ID())
	s.Require().NoError(err)
	s.Equal(rec.Title(), found.Title())
	s.Equal(25, found.ReadyInMinutes())
	s.Len(found.Ingredients(), 3)
	s.Equal([]string{"italian"}, found.Cuisines())
}

func (s *RepositoryTestSuite) TestRecipeFindByExternalID() {
	rec := s.factory.Recipe(s.userID)
	rec.SetExternalID(715538)
	s.Require().NoError(s.recipeRepo.Create(s.ctx, rec))

	found, err := s.recipeRepo.FindByExternalID(s.ctx, s.userID, 715538)
	s.Require().NoError(err)
	s.Equal(rec.ID(), found.ID())

	_, err = s.recipeRepo.FindByExternalID(s.ctx, s.userID, 999999)
	s.Equal(recipe.ErrRecipeNotFound, err)

	// Another user's save of the same external recipe is invisible here.
	_, err = s.recipeRepo.FindByExternalID(s.ctx, uuid.New(), 715538)
	s.Equal(recipe.ErrRecipeNotFound, err)
}

func (s *RepositoryTestSuite) TestRecipePagination() {
	for i := 0; i < 5; i++ {
		s.Require().NoError(s.recipeRepo.Create(s.ctx, s.factory.Recipe(s.userID)))
	}

	page, total, err := s.recipeRepo.FindByUser(s.ctx, s.userID, 0, 3)
	s.Require().NoError(err)
	s.Equal(int64(5), total)
	s.Len(page, 3)

	rest, _, err := s.recipeRepo.FindByUser(s.ctx, s.userID, 3, 3)
	s.Require().NoError(err)
	s.Len(rest, 2)
}

func (s *RepositoryTestSuite) TestMealFindByDayBoundaries() {
	dayStart := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	inside := s.factory.MealEntry(s.userID, mealentry.MealBreakfast, dayStart.Add(8*time.Hour))
	atStart := s.factory.MealEntry(s.userID, mealentry.MealLunch, dayStart)
	before := s.factory.MealEntry(s.userID, mealentry.MealDinner, dayStart.Add(-time.Minute))
	atEnd := s.factory.MealEntry(s.userID, mealentry.MealSnack, dayEnd)

	for _, e := range []*mealentry.Entry{inside, atStart, before, atEnd} {
		s.Require().NoError(s.mealRepo.Create(s.ctx, e))
	}

	entries, err := s.mealRepo.FindByDay(s.ctx, s.userID, dayStart, dayEnd)
	s.Require().NoError(err)
	s.Len(entries, 2)
	s.Equal(atStart.ID(), entries[0].ID())
	s.Equal(inside.ID(), entries[1].ID())
}

func (s *RepositoryTestSuite) TestUserEmailLookupIsCaseInsensitive() {
	account := s.factory.User()
	s.Require().NoError(s.userRepo.Create(s.ctx, account))

	exists, err := s.userRepo.ExistsByEmail(s.ctx, strings.ToUpper(account.Email()))
	s.Require().NoError(err)
	s.True(exists)

	found, err := s.userRepo.FindByEmail(s.ctx, strings.ToUpper(account.Email()))
	s.Require().NoError(err)
	s.Equal(account.ID(), found.ID())
}

func (s *RepositoryTestSuite) TestUserNotFound() {
	_, err := s.userRepo.FindByID(s.ctx, uuid.New())
	s.Equal(user.ErrUserNotFound, err)
}

func (s *RepositoryTestSuite) TestUserGoalsRoundTrip() {
	account := s.factory.User()
	s.Require().NoError(account.SetGoals(user.MacroGoals{Calories: 2000, Protein: 150, Carbs: 200, Fat: 65}))
	s.Require().NoError(s.userRepo.Create(s.ctx, account))

	found, err := s.userRepo.FindByID(s.ctx, account.ID())
	s.Require().NoError(err)
	s.Require().NotNil(found.Goals())
	s.Equal(2000.0, found.Goals().Calories)
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func TestTransactionRollsBackOnError(t *testing.T) {
	db := testutils.SetupTestDatabase(t)
	ctx := context.Background()
	userID := uuid.New()
	factory := testutils.NewFactory(12)

	groceryRepo := gormrepo.NewGroceryRepository(db)
	txManager := gormrepo.NewTransactionManager(db)

	err := txManager.Transact(ctx, func(tx any) error {
		repo := groceryRepo.WithTx(tx)
		if err := repo.Create(ctx, factory.GroceryItem(userID, "flour", nil, nil)); err != nil {
			return err
		}
		return grocery.ErrItemNotFound
	})
	require.Error(t, err)

	items, err := groceryRepo.FindByUser(ctx, userID)
	require.NoError(t, err)
	require.Empty(t, items)
}
