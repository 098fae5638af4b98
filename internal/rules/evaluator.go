package rules

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-one-2/money/internal/model"
)

// Base thresholds before priority relaxation or strict-mode tightening.
const (
	highExpenseRatio             = 0.05 // share of monthly income for a single expense
	highExpenseRatioRelaxed      = 0.07
	savingsRiskMultiplier        = 3 // of the remaining daily budget
	savingsRiskMultiplierRelaxed = 4
	relaxedBudgetBonus           = 5 // percentage points added to a category budget ratio
	strictScale                  = 0.8
	relaxedFreqScale             = 1.2
	savingsRiskMinDays           = 7
)

// Result is the outcome of evaluating a single expense.
type Result struct {
	Verdict     model.Verdict
	Reason      string
	SubCategory model.SubCategory
}

// AnalyzeExpense judges one expense against the user's budgeting rules and
// the month-to-date snapshot. It is a pure function of its arguments: no
// I/O, no clock, no global state. Stats must cover prior expenses only,
// excluding the expense under evaluation.
func AnalyzeExpense(expense model.Expense, settings model.UserSettings, stats model.MonthlyStats) Result {
	subCategory := DetectSubCategory(expense.Memo)

	// Essential categories are unconditionally exempt from judgment.
	if settings.IsEssential(expense.Category) {
		return Result{
			Verdict:     model.VerdictGood,
			Reason:      fmt.Sprintf("%s은(는) 생활에 필요한 필수 지출입니다.", expense.Category),
			SubCategory: subCategory,
		}
	}

	match := CheckPriorityMatch(expense.Category, expense.Memo, settings.Priorities)
	strict := IsStrictMode(settings.Priorities)
	relaxed := match.Matched && !strict

	var violations []string

	// Single-expense size against monthly income. Strict mode keeps the
	// base ratio; only relaxation moves it.
	ratio := highExpenseRatio
	if relaxed {
		ratio = highExpenseRatioRelaxed
	}
	threshold := float64(settings.MonthlyIncome) * ratio
	if float64(expense.Amount) > threshold {
		violations = append(violations, fmt.Sprintf(
			"한 번에 쓰기엔 큰 금액이에요. 월 수입의 %.0f%%(%.0f원)를 넘었어요.",
			ratio*100, threshold))
	}

	// Monthly frequency per sub-category. The current expense is not yet
	// counted, so reaching the limit means this is the limit+1-th one.
	if limit, ok := frequencyLimits[subCategory]; ok {
		if relaxed {
			limit = int(math.Ceil(float64(limit) * relaxedFreqScale))
		} else if strict {
			limit = int(math.Floor(float64(limit) * strictScale))
		}
		if count := stats.SubCategoryCounts[subCategory]; count >= limit {
			violations = append(violations, fmt.Sprintf(
				"이번 달 %s %d번째예요. 월 %d회 한도를 넘었어요.",
				subCategory, count+1, limit))
		}
	}

	// Category budget as a share of income. Categories without a
	// configured ratio carry no budget and skip this check.
	if budgetRatio, ok := budgetRatios[expense.Category]; ok {
		if relaxed {
			budgetRatio += relaxedBudgetBonus
		} else if strict {
			budgetRatio = int(math.Floor(float64(budgetRatio) * strictScale))
		}
		budget := settings.MonthlyIncome * int64(budgetRatio) / 100
		projected := stats.CategoryTotals[expense.Category] + expense.Amount
		if projected > budget {
			violations = append(violations, fmt.Sprintf(
				"%s 예산 %d원을 초과해요 (이번 달 누적 %d원).",
				expense.Category, budget, projected))
		}
	}

	// Savings-goal risk over the rest of the month. Skipped near month end
	// where the daily budget loses meaning.
	if stats.RemainingDays >= savingsRiskMinDays {
		dailyBudget := float64(settings.MonthlyIncome-settings.SavingsGoal-stats.TotalSpent) /
			float64(stats.RemainingDays)
		multiplier := float64(savingsRiskMultiplier)
		if relaxed {
			multiplier = savingsRiskMultiplierRelaxed
		}
		if dailyBudget > 0 && float64(expense.Amount) > dailyBudget*multiplier {
			violations = append(violations, fmt.Sprintf(
				"저축 목표가 위험해요. 하루 예산 %.0f원의 %.0f배를 넘는 지출이에요.",
				dailyBudget, multiplier))
		}
	}

	return Result{
		Verdict:     decide(relaxed, violations),
		Reason:      assembleReason(relaxed, match, violations),
		SubCategory: subCategory,
	}
}

// decide applies the final decision policy. A priority match forgives a
// single violation but not two; without one, any violation is bad and a
// clean expense is merely neutral, never good.
func decide(relaxed bool, violations []string) model.Verdict {
	if relaxed {
		switch len(violations) {
		case 0:
			return model.VerdictGood
		case 1:
			return model.VerdictNeutral
		default:
			return model.VerdictBad
		}
	}
	if len(violations) > 0 {
		return model.VerdictBad
	}
	return model.VerdictNeutral
}

func assembleReason(relaxed bool, match PriorityMatch, violations []string) string {
	if relaxed {
		switch len(violations) {
		case 0:
			return match.Reason
		case 1:
			return match.Reason + " 하지만 " + violations[0]
		default:
			return strings.Join(violations, " ")
		}
	}
	if len(violations) > 0 {
		return strings.Join(violations, " ")
	}
	return "정상적인 소비 범위 내의 지출이에요."
}
