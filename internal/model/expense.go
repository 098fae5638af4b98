package model

import "time"

// Verdict is the outcome label for a judged expense.
type Verdict string

// Verdict values. Earlier revisions of the rules used only good/bad; the
// three-way split is load-bearing for downstream statistics and must not
// be collapsed.
const (
	VerdictGood    Verdict = "good"
	VerdictBad     Verdict = "bad"
	VerdictNeutral Verdict = "neutral"
)

// IsValid reports whether v is a known verdict.
func (v Verdict) IsValid() bool {
	return v == VerdictGood || v == VerdictBad || v == VerdictNeutral
}

// Judgment is the result of evaluating an expense. It exists only as a
// whole: an expense either carries a complete judgment or none at all.
type Judgment struct {
	Verdict     Verdict
	Reason      string
	SubCategory SubCategory
}

// Expense is one recorded purchase.
type Expense struct {
	CreatedAt time.Time
	Judgment  *Judgment // nil until evaluated
	ID        string
	Date      string // YYYY-MM-DD, basis for all budget math
	Memo      string
	Category  Category
	Amount    int64 // whole currency units, always positive
}

// Month returns the YYYY-MM month key of the expense date.
func (e *Expense) Month() string {
	if len(e.Date) < 7 {
		return e.Date
	}
	return e.Date[:7]
}

// Judged reports whether the expense has been evaluated.
func (e *Expense) Judged() bool {
	return e.Judgment != nil
}
