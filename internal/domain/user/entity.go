// Package user defines the user domain entity
package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User represents an account in the system.
type User struct {
	id           uuid.UUID
	email        string
	name         string
	passwordHash string
	isActive     bool
	role         Role
	goals        *MacroGoals
	createdAt    time.Time
	updatedAt    time.Time
	lastLoginAt  *time.Time
}

// MacroGoals are the user's daily nutrition targets. Zero values mean the
// user has not set a target for that macro.
type MacroGoals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// Role represents the role of a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// NewUser creates a new user with validation. The bcrypt cost comes from
// configuration; bcrypt substitutes its default for costs below the
// minimum.
func NewUser(email, name, password string, bcryptCost int) (*User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, ErrPasswordHashing
	}

	now := time.Now()
	return &User{
		id:           uuid.New(),
		email:        strings.ToLower(email),
		name:         name,
		passwordHash: string(hashedPassword),
		isActive:     true,
		role:         RoleUser,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstitute rebuilds a user from persisted state. Used by the
// persistence mappers only.
func Reconstitute(
	id uuid.UUID,
	email, name, passwordHash string,
	isActive bool,
	role Role,
	goals *MacroGoals,
	createdAt, updatedAt time.Time,
	lastLoginAt *time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		isActive:     isActive,
		role:         role,
		goals:        goals,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		lastLoginAt:  lastLoginAt,
	}
}

// ID returns the user's ID.
func (u *User) ID() uuid.UUID {
	return u.id
}

// Email returns the user's email.
func (u *User) Email() string {
	return u.email
}

// Name returns the user's name.
func (u *User) Name() string {
	return u.name
}

// PasswordHash returns the bcrypt hash for persistence.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// IsActive returns whether the user is active.
func (u *User) IsActive() bool {
	return u.isActive
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// Goals returns the user's daily macro targets, nil when unset.
func (u *User) Goals() *MacroGoals {
	return u.goals
}

// CreatedAt returns when the user was created.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns when the user was last updated.
func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// LastLoginAt returns when the user last logged in.
func (u *User) LastLoginAt() *time.Time {
	return u.lastLoginAt
}

// CheckPassword verifies if the provided password matches.
func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password))
}

// UpdatePassword updates the user's password.
func (u *User) UpdatePassword(newPassword string, bcryptCost int) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return ErrPasswordHashing
	}

	u.passwordHash = string(hashedPassword)
	u.updatedAt = time.Now()
	return nil
}

// SetGoals updates the user's daily macro targets.
func (u *User) SetGoals(goals MacroGoals) error {
	if goals.Calories < 0 || goals.Protein < 0 || goals.Carbs < 0 || goals.Fat < 0 {
		return ErrNegativeGoal
	}
	u.goals = &goals
	u.updatedAt = time.Now()
	return nil
}

// Deactivate deactivates the user.
func (u *User) Deactivate() {
	u.isActive = false
	u.updatedAt = time.Now()
}

// Activate activates the user.
func (u *User) Activate() {
	u.isActive = true
	u.updatedAt = time.Now()
}

// RecordLogin records a login timestamp.
func (u *User) RecordLogin() {
	now := time.Now()
	u.lastLoginAt = &now
	u.updatedAt = now
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if !strings.Contains(email, "@") {
		return ErrEmailInvalid
	}
	if len(email) > 255 {
		return ErrEmailTooLong
	}
	return nil
}

func validateName(name string) error {
	if len(name) < 2 {
		return ErrNameTooShort
	}
	if len(name) > 100 {
		return ErrNameTooLong
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	if len(password) > 128 {
		return ErrPasswordTooLong
	}
	return nil
}
