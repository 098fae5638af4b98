// Package common provides shared utilities and types used across the application.
package common

import "errors"

// Common application errors.
var (
	// Database errors.
	ErrNotFound = errors.New("not found")

	// Settings errors.
	ErrInvalidIncome      = errors.New("monthly income must be positive")
	ErrInvalidSavingsGoal = errors.New("savings goal cannot be negative")
	ErrTooManyPriorities  = errors.New("at most 3 priorities may be selected")
)
