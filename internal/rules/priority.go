package rules

import (
	"fmt"
	"strings"

	"github.com/go-one-2/money/internal/model"
)

// PriorityMatch is the result of checking an expense against the user's
// spending priorities.
type PriorityMatch struct {
	Priority model.Priority // empty when Matched is false
	Reason   string
	Matched  bool
}

// CheckPriorityMatch looks for the first of the user's priorities, in
// their declared order, that vouches for this expense. A priority matches
// when the expense category is in its rule's category set or the memo
// contains any of its keywords. PriorityPractical never matches here; it
// is handled by IsStrictMode.
func CheckPriorityMatch(category model.Category, memo string, priorities []model.Priority) PriorityMatch {
	lowered := strings.ToLower(memo)

	for _, priority := range priorities {
		if priority == model.PriorityPractical {
			continue
		}
		rule, ok := priorityRules[priority]
		if !ok {
			continue
		}
		if matchesRule(rule, category, lowered) {
			return PriorityMatch{
				Matched:  true,
				Priority: priority,
				Reason:   fmt.Sprintf("'%s' 우선순위에 맞는 지출이에요 (%s).", priority, rule.Description),
			}
		}
	}
	return PriorityMatch{}
}

func matchesRule(rule PriorityRule, category model.Category, loweredMemo string) bool {
	for _, c := range rule.Categories {
		if c == category {
			return true
		}
	}
	if loweredMemo == "" {
		return false
	}
	for _, keyword := range rule.Keywords {
		if strings.Contains(loweredMemo, keyword) {
			return true
		}
	}
	return false
}

// IsStrictMode reports whether the practical/essentials-only priority is
// selected. Strict mode tightens thresholds instead of relaxing them.
func IsStrictMode(priorities []model.Priority) bool {
	for _, priority := range priorities {
		if priority == model.PriorityPractical {
			return true
		}
	}
	return false
}
