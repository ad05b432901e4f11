package mealentry_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	appmeal "github.com/fuelapp/v1/internal/application/mealentry"
	"github.com/fuelapp/v1/internal/domain/mealentry"
	"github.com/fuelapp/v1/internal/domain/user"
	"github.com/fuelapp/v1/internal/ports/inbound"
	"github.com/fuelapp/v1/pkg/errors"
	"github.com/fuelapp/v1/test/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type MealServiceTestSuite struct {
	suite.Suite
	mealRepo *testutils.MockMealRepository
	userRepo *testutils.MockUserRepository
	service  inbound.MealService
	ctx      context.Context
	userID   uuid.UUID
	factory  *testutils.Factory
}

func (s *MealServiceTestSuite) SetupTest() {
	s.mealRepo = new(testutils.MockMealRepository)
	s.userRepo = new(testutils.MockUserRepository)
	s.service = appmeal.NewMealService(s.mealRepo, s.userRepo, nil, zap.NewNop())
	s.ctx = context.Background()
	s.userID = uuid.New()
	s.factory = testutils.NewFactory(99)
}

func (s *MealServiceTestSuite) TestLogMeal() {
	s.mealRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	dto, err := s.service.LogMeal(s.ctx, inbound.LogMealCommand{
		UserID:      s.userID,
		Description: "grilled chicken salad",
		MealType:    "lunch",
		Macros:      inbound.MacrosDTO{Calories: 420, Protein: 38, Carbs: 12, Fat: 22},
	})

	s.Require().NoError(err)
	s.Equal("grilled chicken salad", dto.Description)
	s.Equal("lunch", dto.MealType)
	s.Equal("manual", dto.Source)
	s.Equal(420.0, dto.Macros.Calories)
}

func (s *MealServiceTestSuite) TestLogMealCarriesConfidence() {
	s.mealRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	dto, err := s.service.LogMeal(s.ctx, inbound.LogMealCommand{
		UserID:      s.userID,
		Description: "photo of a burrito bowl",
		MealType:    "dinner",
		Source:      "photo",
		Confidence:  testutils.Float64Ptr(0.82),
	})

	s.Require().NoError(err)
	s.Require().NotNil(dto.Confidence)
	s.Equal(0.82, *dto.Confidence)
}

func (s *MealServiceTestSuite) TestLogMealRejectsOutOfRangeConfidence() {
	_, err := s.service.LogMeal(s.ctx, inbound.LogMealCommand{
		UserID:      s.userID,
		Description: "photo of a burrito bowl",
		MealType:    "dinner",
		Source:      "photo",
		Confidence:  testutils.Float64Ptr(1.4),
	})

	s.Require().Error(err)
	s.mealRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *MealServiceTestSuite) TestLogMealRejectsBadType() {
	_, err := s.service.LogMeal(s.ctx, inbound.LogMealCommand{
		UserID:      s.userID,
		Description: "midnight toast",
		MealType:    "brunch",
	})

	s.Require().Error(err)
	s.mealRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *MealServiceTestSuite) TestCorrectMeal() {
	entry := s.factory.MealEntry(s.userID, mealentry.MealLunch, time.Now())

	s.mealRepo.On("FindByID", mock.Anything, entry.ID(), s.userID).Return(entry, nil)
	s.mealRepo.On("Update", mock.Anything, entry).Return(nil)

	dto, err := s.service.CorrectMeal(s.ctx, inbound.CorrectMealCommand{
		EntryID:     entry.ID(),
		UserID:      s.userID,
		Description: "turkey sandwich, no mayo",
		Macros:      inbound.MacrosDTO{Calories: 380, Protein: 28, Carbs: 42, Fat: 9},
		MealType:    "dinner",
	})

	s.Require().NoError(err)
	s.Equal("turkey sandwich, no mayo", dto.Description)
	s.Equal("dinner", dto.MealType)
	s.Equal(380.0, dto.Macros.Calories)
}

func (s *MealServiceTestSuite) TestCorrectMealUnknownEntry() {
	entryID := uuid.New()
	s.mealRepo.On("FindByID", mock.Anything, entryID, s.userID).
		Return(nil, mealentry.ErrEntryNotFound)

	_, err := s.service.CorrectMeal(s.ctx, inbound.CorrectMealCommand{
		EntryID:     entryID,
		UserID:      s.userID,
		Description: "anything",
	})

	s.Require().Error(err)
	appErr, ok := err.(*errors.AppError)
	s.Require().True(ok)
	s.Equal(errors.CodeEntryNotFound, appErr.Code)
}

func (s *MealServiceTestSuite) TestDeleteMealUnknownEntry() {
	entryID := uuid.New()
	s.mealRepo.On("FindByID", mock.Anything, entryID, s.userID).
		Return(nil, mealentry.ErrEntryNotFound)

	err := s.service.DeleteMeal(s.ctx, entryID, s.userID)

	s.Require().Error(err)
	s.mealRepo.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func (s *MealServiceTestSuite) TestDailySummaryAggregates() {
	day := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	dayStart := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	breakfast := s.factory.MealEntry(s.userID, mealentry.MealBreakfast, dayStart.Add(8*time.Hour))
	lunch := s.factory.MealEntry(s.userID, mealentry.MealLunch, dayStart.Add(13*time.Hour))

	s.mealRepo.On("FindByDay", mock.Anything, s.userID, dayStart, dayEnd).
		Return([]*mealentry.Entry{breakfast, lunch}, nil)
	s.userRepo.On("FindByID", mock.Anything, s.userID).
		Return(nil, user.ErrUserNotFound)

	summary, err := s.service.GetDailySummary(s.ctx, s.userID, day)

	s.Require().NoError(err)
	s.Equal("2025-03-14", summary.Date)
	s.Equal(2, summary.Entries)
	s.Equal(900.0, summary.Totals.Calories)
	s.Len(summary.ByMeal["breakfast"], 1)
	s.Len(summary.ByMeal["lunch"], 1)
	s.Nil(summary.Goals)
}

func (s *MealServiceTestSuite) TestDailySummaryIncludesGoals() {
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	account, err := user.NewUser("jo@example.com", "Jo", "password123", bcrypt.MinCost)
	s.Require().NoError(err)
	s.Require().NoError(account.SetGoals(user.MacroGoals{Calories: 2000, Protein: 140}))

	s.mealRepo.On("FindByDay", mock.Anything, s.userID, mock.Anything, mock.Anything).
		Return([]*mealentry.Entry{}, nil)
	s.userRepo.On("FindByID", mock.Anything, s.userID).Return(account, nil)

	summary, err := s.service.GetDailySummary(s.ctx, s.userID, day)

	s.Require().NoError(err)
	s.Equal(0, summary.Entries)
	s.Require().NotNil(summary.Goals)
	s.Equal(2000.0, summary.Goals.Calories)
}

func (s *MealServiceTestSuite) TestDailySummaryServedFromCache() {
	cache := new(testutils.MockCacheRepository)
	service := appmeal.NewMealService(s.mealRepo, s.userRepo, cache, zap.NewNop())

	day := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	key := "summary:" + s.userID.String() + ":2025-03-14"
	cached := &inbound.DailySummary{Date: "2025-03-14", Entries: 2}
	raw, err := json.Marshal(cached)
	s.Require().NoError(err)

	cache.On("Get", mock.Anything, key).Return(raw, nil)

	summary, err := service.GetDailySummary(s.ctx, s.userID, day)

	s.Require().NoError(err)
	s.Equal(2, summary.Entries)
	s.mealRepo.AssertNotCalled(s.T(), "FindByDay",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *MealServiceTestSuite) TestLogMealInvalidatesSummary() {
	cache := new(testutils.MockCacheRepository)
	service := appmeal.NewMealService(s.mealRepo, s.userRepo, cache, zap.NewNop())

	loggedAt := time.Date(2025, 3, 14, 8, 30, 0, 0, time.UTC)
	key := "summary:" + s.userID.String() + ":2025-03-14"

	s.mealRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	cache.On("Delete", mock.Anything, key).Return(nil)

	_, err := service.LogMeal(s.ctx, inbound.LogMealCommand{
		UserID:      s.userID,
		Description: "oatmeal with berries",
		MealType:    "breakfast",
		LoggedAt:    loggedAt,
	})

	s.Require().NoError(err)
	cache.AssertCalled(s.T(), "Delete", mock.Anything, key)
}

func TestMealServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MealServiceTestSuite))
}
