package model

// MaxPriorities caps how many spending priorities a user may select.
const MaxPriorities = 3

// UserSettings holds the per-user budgeting configuration. There is a
// single settings record per database; it is mutated only through
// explicit update calls.
type UserSettings struct {
	MonthlyIncome       int64      // after-tax monthly income, basis for ratio thresholds
	SavingsGoal         int64      // amount the user wants left over per month
	EssentialCategories []Category // unconditionally exempt from judgment
	Priorities          []Priority // ordered, at most MaxPriorities, first match wins
	OnboardingCompleted bool
}

// DefaultUserSettings returns the initial configuration for a new user.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		MonthlyIncome: 3_000_000,
		SavingsGoal:   500_000,
		EssentialCategories: []Category{
			CategoryMedical,
			CategoryEducation,
			CategoryHousing,
			CategoryTransport,
		},
		Priorities: nil,
	}
}

// IsEssential reports whether c is one of the user's essential categories.
func (s *UserSettings) IsEssential(c Category) bool {
	for _, essential := range s.EssentialCategories {
		if c == essential {
			return true
		}
	}
	return false
}

// HasPriority reports whether p is currently selected.
func (s *UserSettings) HasPriority(p Priority) bool {
	for _, selected := range s.Priorities {
		if p == selected {
			return true
		}
	}
	return false
}

// TogglePriority adds p to the selection, or removes it when already
// selected. Adding beyond MaxPriorities is a no-op; the returned bool
// reports whether the selection changed.
func (s *UserSettings) TogglePriority(p Priority) bool {
	for i, selected := range s.Priorities {
		if p == selected {
			s.Priorities = append(s.Priorities[:i], s.Priorities[i+1:]...)
			return true
		}
	}
	if len(s.Priorities) >= MaxPriorities {
		return false
	}
	s.Priorities = append(s.Priorities, p)
	return true
}

// ToggleEssential adds or removes c from the essential category set.
func (s *UserSettings) ToggleEssential(c Category) {
	for i, essential := range s.EssentialCategories {
		if c == essential {
			s.EssentialCategories = append(s.EssentialCategories[:i], s.EssentialCategories[i+1:]...)
			return
		}
	}
	s.EssentialCategories = append(s.EssentialCategories, c)
}
