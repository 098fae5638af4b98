package rules

import (
	"strings"
	"testing"

	"github.com/go-one-2/money/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultSettings() model.UserSettings {
	return model.UserSettings{
		MonthlyIncome: 3_000_000,
		SavingsGoal:   500_000,
		EssentialCategories: []model.Category{
			model.CategoryMedical,
			model.CategoryEducation,
			model.CategoryHousing,
			model.CategoryTransport,
		},
	}
}

func cleanStats() model.MonthlyStats {
	stats := model.NewMonthlyStats()
	stats.RemainingDays = 20
	return stats
}

func expense(category model.Category, amount int64, memo string) model.Expense {
	return model.Expense{
		ID:       "test",
		Date:     "2025-06-10",
		Amount:   amount,
		Category: category,
		Memo:     memo,
	}
}

func TestAnalyzeExpenseEssentialShortCircuit(t *testing.T) {
	settings := defaultSettings()
	stats := cleanStats()

	// Essential categories are good regardless of amount, memo, or stats.
	for _, category := range settings.EssentialCategories {
		got := AnalyzeExpense(expense(category, 10_000_000, "소주 배달 외식"), settings, stats)

		assert.Equal(t, model.VerdictGood, got.Verdict, "category %s", category)
		assert.Contains(t, got.Reason, string(category))
		assert.Contains(t, got.Reason, "필수 지출")
	}
}

func TestAnalyzeExpenseDeterminism(t *testing.T) {
	settings := defaultSettings()
	settings.Priorities = []model.Priority{model.PriorityJoy}
	stats := cleanStats()
	stats.SubCategoryCounts[model.SubCategoryCoffee] = 14
	e := expense(model.CategoryFood, 45_000, "스타벅스 커피")

	first := AnalyzeExpense(e, settings, stats)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, AnalyzeExpense(e, settings, stats))
	}
}

func TestAnalyzeExpenseHighExpense(t *testing.T) {
	settings := defaultSettings()

	// 200,000 > 5% of 3,000,000.
	got := AnalyzeExpense(expense(model.CategoryShopping, 200_000, ""), settings, cleanStats())
	require.Equal(t, model.VerdictBad, got.Verdict)
	assert.Contains(t, got.Reason, "5%")

	// 100,000 is under every threshold; clean but unmatched is neutral.
	got = AnalyzeExpense(expense(model.CategoryShopping, 100_000, ""), settings, cleanStats())
	assert.Equal(t, model.VerdictNeutral, got.Verdict)
	assert.Equal(t, "정상적인 소비 범위 내의 지출이에요.", got.Reason)
}

func TestAnalyzeExpenseCleanWithoutPriorityIsNeverGood(t *testing.T) {
	// A clean expense with no priority match stays neutral. Downstream
	// statistics rely on the three-way split; do not "fix" this to good.
	got := AnalyzeExpense(expense(model.CategoryEtc, 1_000, ""), defaultSettings(), cleanStats())
	assert.Equal(t, model.VerdictNeutral, got.Verdict)
}

func TestAnalyzeExpensePriorityRelaxation(t *testing.T) {
	settings := defaultSettings()
	settings.Priorities = []model.Priority{model.PriorityJoy}

	// 60,000 on a matching culture expense: relaxed threshold is 7%
	// (210,000), nothing violated, zero violations with a match is good.
	got := AnalyzeExpense(expense(model.CategoryCulture, 60_000, "영화"), settings, cleanStats())
	require.Equal(t, model.VerdictGood, got.Verdict)
	assert.Contains(t, got.Reason, string(model.PriorityJoy))
	assert.Equal(t, model.SubCategoryGeneral, got.SubCategory)

	// 180,000 clears 5% but not the relaxed 7%; without the priority the
	// same expense is bad.
	got = AnalyzeExpense(expense(model.CategoryCulture, 180_000, "영화"), settings, cleanStats())
	assert.Equal(t, model.VerdictGood, got.Verdict)

	got = AnalyzeExpense(expense(model.CategoryCulture, 180_000, "영화"), defaultSettings(), cleanStats())
	assert.Equal(t, model.VerdictBad, got.Verdict)
}

func TestAnalyzeExpenseRelaxedConcession(t *testing.T) {
	settings := defaultSettings()
	settings.Priorities = []model.Priority{model.PriorityJoy}

	// One violation under a matched priority softens to neutral with the
	// concession framing.
	got := AnalyzeExpense(expense(model.CategoryCulture, 250_000, "콘서트"), settings, cleanStats())
	require.Equal(t, model.VerdictNeutral, got.Verdict)
	assert.Contains(t, got.Reason, string(model.PriorityJoy))
	assert.Contains(t, got.Reason, " 하지만 ")

	// Two independent violations override the relaxation.
	stats := cleanStats()
	stats.CategoryTotals[model.CategoryCulture] = 400_000 // over the relaxed 15% budget
	got = AnalyzeExpense(expense(model.CategoryCulture, 250_000, "콘서트"), settings, stats)
	require.Equal(t, model.VerdictBad, got.Verdict)
	assert.NotContains(t, got.Reason, string(model.PriorityJoy))
	assert.Contains(t, got.Reason, "큰 금액")
	assert.Contains(t, got.Reason, "예산")
}

func TestAnalyzeExpenseFrequencyBoundary(t *testing.T) {
	tests := []struct {
		name        string
		wantVerdict model.Verdict
		priorCount  int
	}{
		{name: "seventh dining out is fine", priorCount: 6, wantVerdict: model.VerdictNeutral},
		{name: "eighth dining out is fine", priorCount: 7, wantVerdict: model.VerdictNeutral},
		{name: "ninth dining out violates", priorCount: 8, wantVerdict: model.VerdictBad},
		{name: "well past the limit violates", priorCount: 20, wantVerdict: model.VerdictBad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := cleanStats()
			stats.SubCategoryCounts[model.SubCategoryDiningOut] = tt.priorCount

			got := AnalyzeExpense(expense(model.CategoryFood, 20_000, "외식"), defaultSettings(), stats)

			require.Equal(t, tt.wantVerdict, got.Verdict)
			assert.Equal(t, model.SubCategoryDiningOut, got.SubCategory)
			if tt.wantVerdict == model.VerdictBad {
				assert.Contains(t, got.Reason, string(model.SubCategoryDiningOut))
			}
		})
	}
}

func TestAnalyzeExpenseCoffeeFrequency(t *testing.T) {
	stats := cleanStats()
	stats.SubCategoryCounts[model.SubCategoryCoffee] = 15

	got := AnalyzeExpense(expense(model.CategoryFood, 5_000, "스타벅스 커피"), defaultSettings(), stats)

	require.Equal(t, model.VerdictBad, got.Verdict)
	assert.Equal(t, model.SubCategoryCoffee, got.SubCategory)
	assert.Contains(t, got.Reason, "16번째")
}

func TestAnalyzeExpenseRelaxedFrequencyLimit(t *testing.T) {
	settings := defaultSettings()
	settings.Priorities = []model.Priority{model.PriorityTogether} // "카페" keyword matches

	// Relaxed coffee limit is ceil(15*1.2) = 18: 17 prior coffees pass,
	// 18 trigger the single-violation concession.
	stats := cleanStats()
	stats.SubCategoryCounts[model.SubCategoryCoffee] = 17
	got := AnalyzeExpense(expense(model.CategoryFood, 6_000, "카페 라떼"), settings, stats)
	assert.Equal(t, model.VerdictGood, got.Verdict)

	stats.SubCategoryCounts[model.SubCategoryCoffee] = 18
	got = AnalyzeExpense(expense(model.CategoryFood, 6_000, "카페 라떼"), settings, stats)
	assert.Equal(t, model.VerdictNeutral, got.Verdict)
	assert.Contains(t, got.Reason, " 하지만 ")
}

func TestAnalyzeExpenseStrictModeTightens(t *testing.T) {
	strict := defaultSettings()
	strict.Priorities = []model.Priority{model.PriorityPractical}

	// Strict dining-out limit is floor(8*0.8) = 6.
	stats := cleanStats()
	stats.SubCategoryCounts[model.SubCategoryDiningOut] = 6
	got := AnalyzeExpense(expense(model.CategoryFood, 20_000, "외식"), strict, stats)
	assert.Equal(t, model.VerdictBad, got.Verdict)

	got = AnalyzeExpense(expense(model.CategoryFood, 20_000, "외식"), defaultSettings(), stats)
	assert.Equal(t, model.VerdictNeutral, got.Verdict)

	// Strict shopping budget is floor(10*0.8) = 8% -> 240,000.
	stats = cleanStats()
	stats.CategoryTotals[model.CategoryShopping] = 150_000
	got = AnalyzeExpense(expense(model.CategoryShopping, 100_000, ""), strict, stats)
	assert.Equal(t, model.VerdictBad, got.Verdict)

	got = AnalyzeExpense(expense(model.CategoryShopping, 100_000, ""), defaultSettings(), stats)
	assert.Equal(t, model.VerdictNeutral, got.Verdict)

	// Strict mode keeps the 5% high-expense ratio: nothing tighter, and a
	// co-selected priority must not relax it either.
	strict.Priorities = []model.Priority{model.PriorityPractical, model.PriorityJoy}
	got = AnalyzeExpense(expense(model.CategoryCulture, 180_000, "영화"), strict, cleanStats())
	assert.Equal(t, model.VerdictBad, got.Verdict)
}

func TestAnalyzeExpenseSavingsRisk(t *testing.T) {
	settings := defaultSettings()
	settings.SavingsGoal = 2_000_000

	stats := cleanStats()
	stats.TotalSpent = 500_000
	stats.RemainingDays = 10
	// Daily budget (3,000,000-2,000,000-500,000)/10 = 50,000; triple is
	// 150,000, so 140,000 passes and 160,000 does not. Both are under the
	// 5% high-expense threshold.
	got := AnalyzeExpense(expense(model.CategoryEtc, 140_000, ""), settings, stats)
	assert.Equal(t, model.VerdictNeutral, got.Verdict)

	got = AnalyzeExpense(expense(model.CategoryEtc, 149_000, ""), settings, stats)
	assert.Equal(t, model.VerdictNeutral, got.Verdict)

	stats2 := cleanStats()
	stats2.TotalSpent = 800_000
	stats2.RemainingDays = 10
	// Daily budget drops to 20,000; 100,000 > 60,000.
	got = AnalyzeExpense(expense(model.CategoryEtc, 100_000, ""), settings, stats2)
	require.Equal(t, model.VerdictBad, got.Verdict)
	assert.Contains(t, got.Reason, "저축 목표")

	// Fewer than 7 days remaining skips the check entirely.
	stats2.RemainingDays = 6
	got = AnalyzeExpense(expense(model.CategoryEtc, 100_000, ""), settings, stats2)
	assert.Equal(t, model.VerdictNeutral, got.Verdict)

	// A non-positive daily budget never triggers the check.
	stats3 := cleanStats()
	stats3.TotalSpent = 2_000_000
	stats3.RemainingDays = 10
	got = AnalyzeExpense(expense(model.CategoryEtc, 50_000, ""), settings, stats3)
	assert.Equal(t, model.VerdictNeutral, got.Verdict)
}

func TestAnalyzeExpenseReasonOrder(t *testing.T) {
	settings := defaultSettings()
	settings.SavingsGoal = 2_000_000

	stats := cleanStats()
	stats.SubCategoryCounts[model.SubCategoryDiningOut] = 8
	stats.CategoryTotals[model.CategoryFood] = 300_000
	stats.TotalSpent = 500_000
	stats.RemainingDays = 10

	// 200,000 on dining out trips every check at once.
	got := AnalyzeExpense(expense(model.CategoryFood, 200_000, "외식"), settings, stats)
	require.Equal(t, model.VerdictBad, got.Verdict)

	high := strings.Index(got.Reason, "큰 금액")
	freq := strings.Index(got.Reason, "번째")
	budget := strings.Index(got.Reason, "예산")
	savings := strings.Index(got.Reason, "저축 목표")
	require.True(t, high >= 0 && freq >= 0 && budget >= 0 && savings >= 0, "reason: %s", got.Reason)
	assert.True(t, high < freq && freq < budget && budget < savings, "reason: %s", got.Reason)
}

func TestAnalyzeExpenseZeroIncome(t *testing.T) {
	// Degenerate income is not special-cased: thresholds collapse to zero
	// and any positive amount violates, without panicking.
	settings := defaultSettings()
	settings.MonthlyIncome = 0

	got := AnalyzeExpense(expense(model.CategoryShopping, 1_000, ""), settings, cleanStats())
	assert.Equal(t, model.VerdictBad, got.Verdict)
}
