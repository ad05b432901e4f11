package user_test

import (
	"context"
	"testing"

	appuser "github.com/fuelapp/v1/internal/application/user"
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

type UserServiceTestSuite struct {
	suite.Suite
	userRepo *testutils.MockUserRepository
	tokens   *testutils.MockTokenService
	service  inbound.UserService
	ctx      context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.userRepo = new(testutils.MockUserRepository)
	s.tokens = new(testutils.MockTokenService)
	s.service = appuser.NewUserService(s.userRepo, s.tokens, bcrypt.MinCost, zap.NewNop())
	s.ctx = context.Background()
}

func (s *UserServiceTestSuite) TestRegister() {
	s.userRepo.On("ExistsByEmail", mock.Anything, "jo@example.com").Return(false, nil)
	s.userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	s.tokens.On("Issue", mock.Anything, "jo@example.com").Return("token-abc", nil)

	result, err := s.service.Register(s.ctx, inbound.RegisterCommand{
		Email:    "jo@example.com",
		Name:     "Jo",
		Password: "password123",
	})

	s.Require().NoError(err)
	s.Equal("token-abc", result.Token)
	s.Equal("jo@example.com", result.User.Email)
}

func (s *UserServiceTestSuite) TestRegisterDuplicateEmail() {
	s.userRepo.On("ExistsByEmail", mock.Anything, "jo@example.com").Return(true, nil)

	_, err := s.service.Register(s.ctx, inbound.RegisterCommand{
		Email:    "jo@example.com",
		Name:     "Jo",
		Password: "password123",
	})

	s.Require().Error(err)
	appErr, ok := err.(*errors.AppError)
	s.Require().True(ok)
	s.Equal(errors.CodeEmailAlreadyExists, appErr.Code)
	s.userRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestRegisterWeakPassword() {
	s.userRepo.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)

	_, err := s.service.Register(s.ctx, inbound.RegisterCommand{
		Email:    "jo@example.com",
		Name:     "Jo",
		Password: "short",
	})

	s.Require().Error(err)
	s.userRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestLogin() {
	entity, err := user.NewUser("jo@example.com", "Jo", "password123", bcrypt.MinCost)
	s.Require().NoError(err)

	s.userRepo.On("FindByEmail", mock.Anything, "jo@example.com").Return(entity, nil)
	s.userRepo.On("UpdateLastLogin", mock.Anything, entity.ID()).Return(nil)
	s.tokens.On("Issue", entity.ID(), "jo@example.com").Return("token-abc", nil)

	result, err := s.service.Login(s.ctx, "jo@example.com", "password123")

	s.Require().NoError(err)
	s.Equal("token-abc", result.Token)
}

func (s *UserServiceTestSuite) TestLoginWrongPassword() {
	entity, err := user.NewUser("jo@example.com", "Jo", "password123", bcrypt.MinCost)
	s.Require().NoError(err)

	s.userRepo.On("FindByEmail", mock.Anything, "jo@example.com").Return(entity, nil)

	_, err = s.service.Login(s.ctx, "jo@example.com", "wrong-password")

	s.Require().Error(err)
	appErr, ok := err.(*errors.AppError)
	s.Require().True(ok)
	s.Equal(errors.CodeInvalidCredentials, appErr.Code)
}

// A missing account and a wrong password must be indistinguishable.
func (s *UserServiceTestSuite) TestLoginUnknownEmailSameError() {
	s.userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").
		Return(nil, user.ErrUserNotFound)

	_, err := s.service.Login(s.ctx, "ghost@example.com", "password123")

	s.Require().Error(err)
	appErr, ok := err.(*errors.AppError)
	s.Require().True(ok)
	s.Equal(errors.CodeInvalidCredentials, appErr.Code)
}

func (s *UserServiceTestSuite) TestLoginDeactivatedAccount() {
	entity, err := user.NewUser("jo@example.com", "Jo", "password123", bcrypt.MinCost)
	s.Require().NoError(err)
	entity.Deactivate()

	s.userRepo.On("FindByEmail", mock.Anything, "jo@example.com").Return(entity, nil)

	_, err = s.service.Login(s.ctx, "jo@example.com", "password123")

	s.Require().Error(err)
	appErr, ok := err.(*errors.AppError)
	s.Require().True(ok)
	s.Equal(errors.CodeForbidden, appErr.Code)
}

func (s *UserServiceTestSuite) TestSetGoals() {
	entity, err := user.NewUser("jo@example.com", "Jo", "password123", bcrypt.MinCost)
	s.Require().NoError(err)

	s.userRepo.On("FindByID", mock.Anything, entity.ID()).Return(entity, nil)
	s.userRepo.On("Update", mock.Anything, entity).Return(nil)

	dto, err := s.service.SetGoals(s.ctx, entity.ID(), inbound.MacroGoalsDTO{
		Calories: 2200,
		Protein:  150,
		Carbs:    220,
		Fat:      70,
	})

	s.Require().NoError(err)
	s.Require().NotNil(dto.Goals)
	s.Equal(2200.0, dto.Goals.Calories)
}

func (s *UserServiceTestSuite) TestSetGoalsRejectsNegative() {
	entity, err := user.NewUser("jo@example.com", "Jo", "password123", bcrypt.MinCost)
	s.Require().NoError(err)

	s.userRepo.On("FindByID", mock.Anything, entity.ID()).Return(entity, nil)

	_, err = s.service.SetGoals(s.ctx, entity.ID(), inbound.MacroGoalsDTO{Calories: -100})

	s.Require().Error(err)
	s.userRepo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestGetProfileUnknownUser() {
	id := uuid.New()
	s.userRepo.On("FindByID", mock.Anything, id).Return(nil, user.ErrUserNotFound)

	_, err := s.service.GetProfile(s.ctx, id)

	s.Require().Error(err)
	appErr, ok := err.(*errors.AppError)
	s.Require().True(ok)
	s.Equal(errors.CodeUserNotFound, appErr.Code)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
