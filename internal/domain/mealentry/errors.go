package mealentry

import "errors"

var (
	ErrEmptyDescription  = errors.New("entry description cannot be empty")
	ErrInvalidMealType   = errors.New("invalid meal type")
	ErrNegativeMacros    = errors.New("macros cannot be negative")
	ErrInvalidConfidence = errors.New("confidence must be between 0 and 1")
	ErrEntryNotFound     = errors.New("meal entry not found")
)
