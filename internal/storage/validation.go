package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-one-2/money/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrNilParameter   = errors.New("parameter cannot be nil")
	ErrInvalidExpense = errors.New("invalid expense")
	ErrInvalidMonth   = errors.New("invalid month key")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateMonth ensures a month key is in YYYY-MM form.
func validateMonth(month string) error {
	if _, err := time.Parse("2006-01", month); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}
	return nil
}

// validateExpense validates a single expense before persistence.
func validateExpense(expense *model.Expense) error {
	if expense == nil {
		return fmt.Errorf("%w: expense", ErrNilParameter)
	}
	if strings.TrimSpace(expense.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidExpense)
	}
	if _, err := time.Parse("2006-01-02", expense.Date); err != nil {
		return fmt.Errorf("%w: bad date %q", ErrInvalidExpense, expense.Date)
	}
	if expense.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidExpense)
	}
	if !expense.Category.IsValid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidExpense, expense.Category)
	}
	if expense.Judgment != nil {
		if !expense.Judgment.Verdict.IsValid() {
			return fmt.Errorf("%w: unknown verdict %q", ErrInvalidExpense, expense.Judgment.Verdict)
		}
		if !expense.Judgment.SubCategory.IsValid() {
			return fmt.Errorf("%w: unknown sub-category %q", ErrInvalidExpense, expense.Judgment.SubCategory)
		}
	}
	return nil
}
