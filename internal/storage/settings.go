package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-one-2/money/internal/common"
	"github.com/go-one-2/money/internal/model"
)

// GetUserSettings loads the singleton settings record, seeding the
// defaults on first access.
func (s *SQLiteStorage) GetUserSettings(ctx context.Context) (*model.UserSettings, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var (
		income, savings int64
		essentials      string
		priorities      string
		onboarded       bool
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT monthly_income, savings_goal, essential_categories, priorities, onboarding_completed
		 FROM user_settings WHERE id = 1`).
		Scan(&income, &savings, &essentials, &priorities, &onboarded)
	if errors.Is(err, sql.ErrNoRows) {
		defaults := model.DefaultUserSettings()
		if err := s.SaveUserSettings(ctx, &defaults); err != nil {
			return nil, err
		}
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user settings: %w", err)
	}

	settings := model.UserSettings{
		MonthlyIncome:       income,
		SavingsGoal:         savings,
		OnboardingCompleted: onboarded,
	}
	if err := json.Unmarshal([]byte(essentials), &settings.EssentialCategories); err != nil {
		return nil, fmt.Errorf("failed to decode essential categories: %w", err)
	}
	if err := json.Unmarshal([]byte(priorities), &settings.Priorities); err != nil {
		return nil, fmt.Errorf("failed to decode priorities: %w", err)
	}
	return &settings, nil
}

// SaveUserSettings upserts the singleton settings record.
func (s *SQLiteStorage) SaveUserSettings(ctx context.Context, settings *model.UserSettings) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if settings == nil {
		return fmt.Errorf("%w: settings", ErrNilParameter)
	}
	if settings.MonthlyIncome <= 0 {
		return common.ErrInvalidIncome
	}
	if settings.SavingsGoal < 0 {
		return common.ErrInvalidSavingsGoal
	}
	if len(settings.Priorities) > model.MaxPriorities {
		return common.ErrTooManyPriorities
	}

	essentials, err := json.Marshal(settings.EssentialCategories)
	if err != nil {
		return fmt.Errorf("failed to encode essential categories: %w", err)
	}
	priorities, err := json.Marshal(settings.Priorities)
	if err != nil {
		return fmt.Errorf("failed to encode priorities: %w", err)
	}

	_, err = s.execContext(ctx, "save user settings",
		`INSERT INTO user_settings (id, monthly_income, savings_goal, essential_categories, priorities, onboarding_completed)
		 VALUES (1, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			monthly_income = excluded.monthly_income,
			savings_goal = excluded.savings_goal,
			essential_categories = excluded.essential_categories,
			priorities = excluded.priorities,
			onboarding_completed = excluded.onboarding_completed`,
		settings.MonthlyIncome, settings.SavingsGoal, string(essentials), string(priorities),
		settings.OnboardingCompleted)
	return err
}
