package model

import "time"

// MonthlyStats is a snapshot of month-to-date aggregates computed by the
// caller before each evaluation. All figures cover prior expenses only;
// the expense being evaluated is never included.
type MonthlyStats struct {
	SubCategoryCounts map[SubCategory]int
	CategoryTotals    map[Category]int64
	TotalSpent        int64
	RemainingDays     int // days left in the month, including today
}

// NewMonthlyStats returns a zeroed snapshot with every sub-category and
// category key present.
func NewMonthlyStats() MonthlyStats {
	counts := make(map[SubCategory]int, len(SubCategories))
	for _, s := range SubCategories {
		counts[s] = 0
	}
	totals := make(map[Category]int64, len(Categories))
	for _, c := range Categories {
		totals[c] = 0
	}
	return MonthlyStats{
		SubCategoryCounts: counts,
		CategoryTotals:    totals,
	}
}

// RemainingDaysInMonth returns the number of days left in t's calendar
// month, counting t's day itself.
func RemainingDaysInMonth(t time.Time) int {
	lastDay := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, -1).Day()
	return lastDay - t.Day() + 1
}
