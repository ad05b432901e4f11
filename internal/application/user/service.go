// Package user provides the application layer for accounts and
// authentication.
package user

import (
	"context"

	"github.com/fuelapp/v1/internal/domain/user"
	"github.com/fuelapp/v1/internal/ports/inbound"
	"github.com/fuelapp/v1/internal/ports/outbound"
	"github.com/fuelapp/v1/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService implements the account use cases.
type UserService struct {
	userRepo   outbound.UserRepository
	tokens     outbound.TokenService
	bcryptCost int
	logger     *zap.Logger
}

// NewUserService creates a new user service.
func NewUserService(
	userRepo outbound.UserRepository,
	tokens outbound.TokenService,
	bcryptCost int,
	logger *zap.Logger,
) inbound.UserService {
	return &UserService{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger.Named("user-service"),
	}
}

// Register creates an account and returns a session token.
func (s *UserService) Register(ctx context.Context, cmd inbound.RegisterCommand) (*inbound.AuthResult, error) {
	taken, err := s.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, errors.NewDatabaseError("check email", err)
	}
	if taken {
		return nil, errors.NewEmailAlreadyExistsError(cmd.Email)
	}

	entity, err := user.NewUser(cmd.Email, cmd.Name, cmd.Password, s.bcryptCost)
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if err := s.userRepo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create user", err)
	}

	token, err := s.tokens.Issue(entity.ID(), entity.Email())
	if err != nil {
		return nil, errors.NewInternalError("failed to issue token")
	}

	s.logger.Info("User registered",
		zap.String("user_id", entity.ID().String()),
	)

	return &inbound.AuthResult{
		User:  inbound.ToUserDTO(entity),
		Token: token,
	}, nil
}

// Login verifies credentials and returns a session token. The response
// for a missing account and a wrong password is identical.
func (s *UserService) Login(ctx context.Context, email, password string) (*inbound.AuthResult, error) {
	entity, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}
	if !entity.IsActive() {
		return nil, errors.NewForbiddenError("account is deactivated")
	}
	if err := entity.CheckPassword(password); err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := s.userRepo.UpdateLastLogin(ctx, entity.ID()); err != nil {
		s.logger.Warn("Failed to record login time", zap.Error(err))
	}

	token, err := s.tokens.Issue(entity.ID(), entity.Email())
	if err != nil {
		return nil, errors.NewInternalError("failed to issue token")
	}

	return &inbound.AuthResult{
		User:  inbound.ToUserDTO(entity),
		Token: token,
	}, nil
}

// GetProfile returns the account profile.
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*inbound.UserDTO, error) {
	entity, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.NewUserNotFoundError(userID.String())
	}

	dto := inbound.ToUserDTO(entity)
	return &dto, nil
}

// SetGoals updates the user's daily macro targets.
func (s *UserService) SetGoals(ctx context.Context, userID uuid.UUID, goals inbound.MacroGoalsDTO) (*inbound.UserDTO, error) {
	entity, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.NewUserNotFoundError(userID.String())
	}

	if err := entity.SetGoals(user.MacroGoals{
		Calories: goals.Calories,
		Protein:  goals.Protein,
		Carbs:    goals.Carbs,
		Fat:      goals.Fat,
	}); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if err := s.userRepo.Update(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("update user", err)
	}

	dto := inbound.ToUserDTO(entity)
	return &dto, nil
}
