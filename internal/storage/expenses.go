package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-one-2/money/internal/common"
	"github.com/go-one-2/money/internal/model"
)

// SaveExpense inserts a new expense record.
func (s *SQLiteStorage) SaveExpense(ctx context.Context, expense *model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateExpense(expense); err != nil {
		return err
	}

	var verdict, reason, subCategory sql.NullString
	if expense.Judgment != nil {
		verdict = sql.NullString{String: string(expense.Judgment.Verdict), Valid: true}
		reason = sql.NullString{String: expense.Judgment.Reason, Valid: true}
		subCategory = sql.NullString{String: string(expense.Judgment.SubCategory), Valid: true}
	}

	_, err := s.execContext(ctx, "save expense",
		`INSERT INTO expenses (id, date, amount, category, memo, verdict, reason, sub_category, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.Date, expense.Amount, string(expense.Category), expense.Memo,
		verdict, reason, subCategory, expense.CreatedAt)
	return err
}

// UpdateExpenseJudgment attaches a complete judgment to a stored expense.
func (s *SQLiteStorage) UpdateExpenseJudgment(ctx context.Context, id string, judgment model.Judgment) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	if !judgment.Verdict.IsValid() || !judgment.SubCategory.IsValid() {
		return fmt.Errorf("%w: incomplete judgment", ErrInvalidExpense)
	}

	res, err := s.execContext(ctx, "update expense judgment",
		`UPDATE expenses SET verdict = ?, reason = ?, sub_category = ? WHERE id = ?`,
		string(judgment.Verdict), judgment.Reason, string(judgment.SubCategory), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("expense %s: %w", id, common.ErrNotFound)
	}
	return nil
}

// DeleteExpense removes an expense record.
func (s *SQLiteStorage) DeleteExpense(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	res, err := s.execContext(ctx, "delete expense", `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("expense %s: %w", id, common.ErrNotFound)
	}
	return nil
}

const expenseColumns = `id, date, amount, category, memo, verdict, reason, sub_category, created_at`

// GetExpenseByID fetches a single expense.
func (s *SQLiteStorage) GetExpenseByID(ctx context.Context, id string) (*model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id = ?`, id)
	expense, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("expense %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return expense, nil
}

// GetExpensesByMonth returns all expenses in the YYYY-MM month, newest first.
func (s *SQLiteStorage) GetExpensesByMonth(ctx context.Context, month string) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses
		 WHERE substr(date, 1, 7) = ?
		 ORDER BY date DESC, created_at DESC`, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectExpenses(rows)
}

// GetRecentExpenses returns the most recently created expenses.
func (s *SQLiteStorage) GetRecentExpenses(ctx context.Context, limit int) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses
		 ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectExpenses(rows)
}

// GetMonthlyAggregates computes the month-to-date snapshot the verdict
// engine consumes: per-sub-category counts, per-category totals, and the
// overall total. Expenses matching excludeID are left out so a freshly
// saved expense does not count against itself; RemainingDays is left for
// the caller, which owns the clock.
func (s *SQLiteStorage) GetMonthlyAggregates(ctx context.Context, month, excludeID string) (*model.MonthlyStats, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateMonth(month); err != nil {
		return nil, err
	}

	stats := model.NewMonthlyStats()

	rows, err := s.db.QueryContext(ctx,
		`SELECT sub_category, COUNT(*) FROM expenses
		 WHERE substr(date, 1, 7) = ? AND id != ? AND sub_category IS NOT NULL
		 GROUP BY sub_category`, month, excludeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sub-category counts: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var sub string
		var count int
		if err := rows.Scan(&sub, &count); err != nil {
			return nil, fmt.Errorf("failed to scan sub-category count: %w", err)
		}
		stats.SubCategoryCounts[model.SubCategory(sub)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sub-category counts: %w", err)
	}

	totalRows, err := s.db.QueryContext(ctx,
		`SELECT category, COALESCE(SUM(amount), 0) FROM expenses
		 WHERE substr(date, 1, 7) = ? AND id != ?
		 GROUP BY category`, month, excludeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query category totals: %w", err)
	}
	defer func() { _ = totalRows.Close() }()
	for totalRows.Next() {
		var category string
		var total int64
		if err := totalRows.Scan(&category, &total); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		stats.CategoryTotals[model.Category(category)] = total
		stats.TotalSpent += total
	}
	if err := totalRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate category totals: %w", err)
	}

	return &stats, nil
}

// scanner abstracts sql.Row and sql.Rows for scanExpense.
type scanner interface {
	Scan(dest ...any) error
}

func scanExpense(row scanner) (*model.Expense, error) {
	var expense model.Expense
	var category string
	var verdict, reason, subCategory sql.NullString

	if err := row.Scan(&expense.ID, &expense.Date, &expense.Amount, &category, &expense.Memo,
		&verdict, &reason, &subCategory, &expense.CreatedAt); err != nil {
		return nil, err
	}

	expense.Category = model.Category(category)
	if verdict.Valid {
		expense.Judgment = &model.Judgment{
			Verdict:     model.Verdict(verdict.String),
			Reason:      reason.String,
			SubCategory: model.SubCategory(subCategory.String),
		}
	}
	return &expense, nil
}

func collectExpenses(rows *sql.Rows) ([]model.Expense, error) {
	var expenses []model.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, *expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}
