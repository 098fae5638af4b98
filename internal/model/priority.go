package model

// Priority is a user-chosen spending value archetype. A matching priority
// relaxes judgment thresholds; PriorityPractical instead activates strict
// mode and tightens them.
type Priority string

// Spending priorities.
const (
	PriorityHealth    Priority = "건강"
	PriorityGrowth    Priority = "자기계발"
	PriorityTogether  Priority = "가족/지인과의 시간"
	PriorityPractical Priority = "실용/필수 우선"
	PriorityJoy       Priority = "즐거움"
	PriorityChildren  Priority = "교육/자녀"
	PriorityStability Priority = "생활안정"
)

// Priorities lists every priority archetype in display order.
var Priorities = []Priority{
	PriorityHealth,
	PriorityGrowth,
	PriorityTogether,
	PriorityPractical,
	PriorityJoy,
	PriorityChildren,
	PriorityStability,
}

// IsValid reports whether p is one of the seven known priorities.
func (p Priority) IsValid() bool {
	for _, known := range Priorities {
		if p == known {
			return true
		}
	}
	return false
}
