package stats

import (
	"testing"
	"time"

	"github.com/go-one-2/money/internal/model"
	"github.com/stretchr/testify/assert"
)

func judged(amount int64, verdict model.Verdict) model.Expense {
	return model.Expense{
		Amount: amount,
		Judgment: &model.Judgment{
			Verdict:     verdict,
			Reason:      "test",
			SubCategory: model.SubCategoryGeneral,
		},
	}
}

func TestSummarize(t *testing.T) {
	current := []model.Expense{
		judged(10_000, model.VerdictGood),
		judged(30_000, model.VerdictBad),
		judged(20_000, model.VerdictNeutral),
		{Amount: 5_000}, // unjudged counts as neutral for display
	}
	previous := []model.Expense{
		judged(60_000, model.VerdictBad),
		judged(10_000, model.VerdictGood),
	}

	summary := Summarize(current, previous)

	assert.Equal(t, 4, summary.TotalCount)
	assert.Equal(t, 1, summary.GoodCount)
	assert.Equal(t, 1, summary.BadCount)
	assert.Equal(t, 2, summary.NeutralCount)
	assert.Equal(t, int64(65_000), summary.TotalAmount)
	assert.Equal(t, int64(10_000), summary.GoodAmount)
	assert.Equal(t, int64(30_000), summary.BadAmount)
	assert.InDelta(t, 46.15, summary.BadPercentage, 0.01)
	assert.InDelta(t, 50.0, summary.Improvement, 0.01)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil, nil)

	assert.Zero(t, summary.TotalCount)
	assert.Zero(t, summary.BadPercentage)
	assert.Zero(t, summary.Improvement)
}

func TestMonthKeys(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-01", MonthKey(now))
	assert.Equal(t, "2024-12", PreviousMonthKey(now))
}
