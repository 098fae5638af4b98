// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/go-one-2/money/internal/model"
)

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Expense operations
	SaveExpense(ctx context.Context, expense *model.Expense) error
	UpdateExpenseJudgment(ctx context.Context, id string, judgment model.Judgment) error
	DeleteExpense(ctx context.Context, id string) error
	GetExpenseByID(ctx context.Context, id string) (*model.Expense, error)
	GetExpensesByMonth(ctx context.Context, month string) ([]model.Expense, error)
	GetRecentExpenses(ctx context.Context, limit int) ([]model.Expense, error)

	// Monthly aggregates. All exclude the expense with excludeID so the
	// evaluator sees prior-expense statistics only; pass "" to include
	// everything.
	GetMonthlyAggregates(ctx context.Context, month, excludeID string) (*model.MonthlyStats, error)

	// Settings operations
	GetUserSettings(ctx context.Context) (*model.UserSettings, error)
	SaveUserSettings(ctx context.Context, settings *model.UserSettings) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
