package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/go-one-2/money/internal/analyzer"
	"github.com/go-one-2/money/internal/cli"
	"github.com/go-one-2/money/internal/model"
	"github.com/go-one-2/money/internal/stats"
)

func addCmd() *cobra.Command {
	var (
		category string
		memo     string
		date     string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record an expense and receive its verdict",
		Long: `Record a single purchase. The expense is evaluated against your
budgeting rules immediately and stored together with its verdict.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || amount <= 0 {
				return fmt.Errorf("amount must be a positive integer, got %q", args[0])
			}

			expenseCategory := model.Category(category)
			if !expenseCategory.IsValid() {
				return fmt.Errorf("unknown category %q (valid: %v)", category, model.Categories)
			}

			if date == "" {
				date = time.Now().Format("2006-01-02")
			}
			expenseDate, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			settings, err := store.GetUserSettings(ctx)
			if err != nil {
				return err
			}

			expense := model.Expense{
				ID:        uuid.New().String(),
				Date:      date,
				Amount:    amount,
				Category:  expenseCategory,
				Memo:      memo,
				CreatedAt: time.Now(),
			}
			if err := store.SaveExpense(ctx, &expense); err != nil {
				return fmt.Errorf("failed to save expense: %w", err)
			}

			snapshot, err := stats.Snapshot(ctx, store, expense.Month(), expense.ID, expenseDate)
			if err != nil {
				return err
			}

			judgment := analyzer.NewService(nil).Analyze(analyzer.Request{
				Expense:  expense,
				Settings: *settings,
				Stats:    snapshot,
			})
			if err := store.UpdateExpenseJudgment(ctx, expense.ID, judgment); err != nil {
				return fmt.Errorf("failed to record judgment: %w", err)
			}
			expense.Judgment = &judgment

			fmt.Println(cli.RenderVerdictCard(&expense))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", string(model.CategoryFood), "expense category")
	cmd.Flags().StringVarP(&memo, "memo", "m", "", "free-text memo, used for sub-category detection")
	cmd.Flags().StringVarP(&date, "date", "d", "", "expense date (YYYY-MM-DD, default today)")

	return cmd
}
