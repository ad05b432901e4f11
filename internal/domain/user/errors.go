package user

import "errors"

var (
	ErrEmailRequired      = errors.New("email is required")
	ErrEmailInvalid       = errors.New("invalid email format")
	ErrEmailTooLong       = errors.New("email too long")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNameTooShort       = errors.New("name must be at least 2 characters")
	ErrNameTooLong        = errors.New("name too long")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password too long")
	ErrPasswordHashing    = errors.New("failed to hash password")
	ErrNegativeGoal       = errors.New("macro goals cannot be negative")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is deactivated")
)
