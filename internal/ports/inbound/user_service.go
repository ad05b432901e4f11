package inbound

import (
	"context"

	"github.com/fuelapp/v1/internal/domain/user"
	"github.com/google/uuid"
)

// UserService defines the use cases for accounts and authentication.
type UserService interface {
	Register(ctx context.Context, cmd RegisterCommand) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
	SetGoals(ctx context.Context, userID uuid.UUID, goals MacroGoalsDTO) (*UserDTO, error)
}

// RegisterCommand contains data for account creation.
type RegisterCommand struct {
	Email    string
	Name     string
	Password string
}

// MacroGoalsDTO is the transport form of daily macro targets.
type MacroGoalsDTO struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// UserDTO is the transport representation of an account.
type UserDTO struct {
	ID    uuid.UUID      `json:"id"`
	Email string         `json:"email"`
	Name  string         `json:"name"`
	Goals *MacroGoalsDTO `json:"goals,omitempty"`
}

// AuthResult pairs a profile with its session token.
type AuthResult struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

// ToUserDTO maps a domain user to its transport form.
func ToUserDTO(u *user.User) UserDTO {
	dto := UserDTO{
		ID:    u.ID(),
		Email: u.Email(),
		Name:  u.Name(),
	}
	if g := u.Goals(); g != nil {
		dto.Goals = &MacroGoalsDTO{
			Calories: g.Calories,
			Protein:  g.Protein,
			Carbs:    g.Carbs,
			Fat:      g.Fat,
		}
	}
	return dto
}
