package cli

import (
	"testing"

	"github.com/go-one-2/money/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatWon(t *testing.T) {
	tests := []struct {
		want   string
		amount int64
	}{
		{amount: 0, want: "0원"},
		{amount: 500, want: "500원"},
		{amount: 5_000, want: "5,000원"},
		{amount: 3_000_000, want: "3,000,000원"},
		{amount: -12_345, want: "-12,345원"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatWon(tt.amount))
	}
}

func TestRenderVerdictCard(t *testing.T) {
	expense := &model.Expense{
		ID:       "e1",
		Date:     "2025-06-10",
		Amount:   12_000,
		Category: model.CategoryFood,
		Memo:     "점심",
		Judgment: &model.Judgment{
			Verdict:     model.VerdictGood,
			Reason:      "정상적인 소비 범위 내의 지출이에요.",
			SubCategory: model.SubCategoryGeneral,
		},
	}

	card := RenderVerdictCard(expense)
	assert.Contains(t, card, "무죄")
	assert.Contains(t, card, "12,000원")
	assert.Contains(t, card, expense.Judgment.Reason)

	expense.Judgment = nil
	assert.Contains(t, RenderVerdictCard(expense), "판결 대기")
}
