package main

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/go-one-2/money/internal/analyzer"
	"github.com/go-one-2/money/internal/cli"
	"github.com/go-one-2/money/internal/model"
	"github.com/go-one-2/money/internal/stats"
)

func reanalyzeCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "reanalyze",
		Short: "Re-run verdicts for a month's expenses",
		Long: `Replay a month chronologically and evaluate every expense again under
the current settings. Each expense sees only the statistics of the
expenses recorded before it, exactly as at original entry time.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if month == "" {
				month = stats.MonthKey(time.Now())
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

			expenses, err := store.GetExpensesByMonth(ctx, month)
			if err != nil {
				return err
			}
			if len(expenses) == 0 {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("No expenses recorded in %s.", month)))
				return nil
			}

			// GetExpensesByMonth returns newest first; replay oldest first.
			for i, j := 0, len(expenses)-1; i < j; i, j = i+1, j-1 {
				expenses[i], expenses[j] = expenses[j], expenses[i]
			}

			bar := progressbar.NewOptions(len(expenses),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan][bold]Re-judging expenses...[reset]"),
			)

			svc := analyzer.NewService(nil)
			running := model.NewMonthlyStats()

			for i := range expenses {
				expense := &expenses[i]

				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				expenseDate, err := time.Parse("2006-01-02", expense.Date)
				if err != nil {
					return fmt.Errorf("expense %s has bad date %q: %w", expense.ID, expense.Date, err)
				}
				running.RemainingDays = model.RemainingDaysInMonth(expenseDate)

				judgment := svc.Analyze(analyzer.Request{
					Expense:  *expense,
					Settings: *settings,
					Stats:    running,
				})
				if err := store.UpdateExpenseJudgment(ctx, expense.ID, judgment); err != nil {
					return fmt.Errorf("failed to update expense %s: %w", expense.ID, err)
				}

				// Fold the judged expense into the running aggregates so
				// later expenses see it as prior spend.
				running.SubCategoryCounts[judgment.SubCategory]++
				running.CategoryTotals[expense.Category] += expense.Amount
				running.TotalSpent += expense.Amount

				_ = bar.Add(1)
			}

			fmt.Println()
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Re-judged %d expenses in %s.", len(expenses), month)))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to reanalyze (YYYY-MM, default current)")

	return cmd
}
