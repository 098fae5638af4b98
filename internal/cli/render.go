package cli

import (
	"fmt"
	"strconv"

	"github.com/go-one-2/money/internal/model"
)

// verdict labels as shown on the result card.
var verdictLabels = map[model.Verdict]string{
	model.VerdictGood:    "무죄",
	model.VerdictBad:     "유죄",
	model.VerdictNeutral: "보류",
}

var verdictIcons = map[model.Verdict]string{
	model.VerdictGood:    GoodIcon,
	model.VerdictBad:     BadIcon,
	model.VerdictNeutral: NeutralIcon,
}

// VerdictLabel returns the user-facing label for a verdict.
func VerdictLabel(v model.Verdict) string {
	return verdictLabels[v]
}

// VerdictStyle returns the lipgloss style matching a verdict.
func VerdictStyle(v model.Verdict) func(string) string {
	switch v {
	case model.VerdictGood:
		return func(s string) string { return SuccessStyle.Render(s) }
	case model.VerdictBad:
		return func(s string) string { return ErrorStyle.Render(s) }
	default:
		return func(s string) string { return WarningStyle.Render(s) }
	}
}

// FormatWon renders an amount with thousands separators and the won suffix.
func FormatWon(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	negative := false
	if s[0] == '-' {
		negative = true
		s = s[1:]
	}
	var out []byte
	for i, digit := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digit)
	}
	if negative {
		return "-" + string(out) + "원"
	}
	return string(out) + "원"
}

// RenderVerdictCard renders the post-evaluation result card for one expense.
func RenderVerdictCard(expense *model.Expense) string {
	if expense.Judgment == nil {
		return RenderBox("판결 대기", fmt.Sprintf("%s · %s",
			string(expense.Category), FormatWon(expense.Amount)))
	}

	judgment := expense.Judgment
	style := VerdictStyle(judgment.Verdict)

	header := style(fmt.Sprintf("%s %s", verdictIcons[judgment.Verdict], verdictLabels[judgment.Verdict]))
	detail := fmt.Sprintf("%s · %s", string(expense.Category), FormatWon(expense.Amount))
	if expense.Memo != "" {
		detail += SubtleStyle.Render(" · " + expense.Memo)
	}

	content := header + "\n" + detail + "\n\n" + judgment.Reason
	return RenderBox("소비 판결", content)
}

// RenderSummaryLine renders one verdict bucket of a monthly summary.
func RenderSummaryLine(verdict model.Verdict, count int, amount int64) string {
	style := VerdictStyle(verdict)
	return style(fmt.Sprintf("%s %s", verdictIcons[verdict], verdictLabels[verdict])) +
		fmt.Sprintf("  %d건 · %s", count, FormatWon(amount))
}
