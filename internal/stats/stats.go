// Package stats assembles monthly snapshots and display summaries from
// stored expenses. The verdict engine never touches storage; everything it
// needs is computed here and passed by value.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/go-one-2/money/internal/model"
	"github.com/go-one-2/money/internal/service"
)

// Snapshot builds the month-to-date statistics for evaluating one expense
// dated within the month of now. excludeID keeps the expense under
// evaluation out of its own aggregates.
func Snapshot(ctx context.Context, store service.Storage, month, excludeID string, now time.Time) (model.MonthlyStats, error) {
	aggregates, err := store.GetMonthlyAggregates(ctx, month, excludeID)
	if err != nil {
		return model.MonthlyStats{}, fmt.Errorf("failed to build monthly snapshot: %w", err)
	}
	aggregates.RemainingDays = model.RemainingDaysInMonth(now)
	return *aggregates, nil
}

// MonthKey returns the YYYY-MM key for t.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// PreviousMonthKey returns the YYYY-MM key of the month before t.
func PreviousMonthKey(t time.Time) string {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, -1, 0).Format("2006-01")
}

// MonthlySummary is the display-side digest of a month's judged spending.
// Unjudged expenses count as neutral here; this is presentation only and
// never feeds back into budget math.
type MonthlySummary struct {
	TotalCount    int
	GoodCount     int
	BadCount      int
	NeutralCount  int
	TotalAmount   int64
	GoodAmount    int64
	BadAmount     int64
	BadPercentage float64
	Improvement   float64 // percent reduction of bad spend vs last month
}

// Summarize digests the current month's expenses, comparing bad spend
// against the previous month's.
func Summarize(current, previous []model.Expense) MonthlySummary {
	var summary MonthlySummary

	for _, e := range current {
		summary.TotalCount++
		summary.TotalAmount += e.Amount

		switch verdictOf(&e) {
		case model.VerdictGood:
			summary.GoodCount++
			summary.GoodAmount += e.Amount
		case model.VerdictBad:
			summary.BadCount++
			summary.BadAmount += e.Amount
		default:
			summary.NeutralCount++
		}
	}

	if summary.TotalAmount > 0 {
		summary.BadPercentage = float64(summary.BadAmount) / float64(summary.TotalAmount) * 100
	}

	var previousBad int64
	for _, e := range previous {
		if verdictOf(&e) == model.VerdictBad {
			previousBad += e.Amount
		}
	}
	if previousBad > 0 {
		summary.Improvement = float64(previousBad-summary.BadAmount) / float64(previousBad) * 100
	}

	return summary
}

func verdictOf(e *model.Expense) model.Verdict {
	if e.Judgment == nil {
		return model.VerdictNeutral
	}
	return e.Judgment.Verdict
}
