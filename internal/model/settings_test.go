package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTogglePriority(t *testing.T) {
	settings := DefaultUserSettings()

	assert.True(t, settings.TogglePriority(PriorityHealth))
	assert.True(t, settings.TogglePriority(PriorityJoy))
	assert.True(t, settings.TogglePriority(PriorityGrowth))
	assert.Equal(t, []Priority{PriorityHealth, PriorityJoy, PriorityGrowth}, settings.Priorities)

	// A fourth selection is refused.
	assert.False(t, settings.TogglePriority(PriorityStability))
	assert.Len(t, settings.Priorities, 3)

	// Toggling a selected priority removes it and preserves order.
	assert.True(t, settings.TogglePriority(PriorityJoy))
	assert.Equal(t, []Priority{PriorityHealth, PriorityGrowth}, settings.Priorities)

	// Room again for one more.
	assert.True(t, settings.TogglePriority(PriorityStability))
	assert.Equal(t, []Priority{PriorityHealth, PriorityGrowth, PriorityStability}, settings.Priorities)
}

func TestToggleEssential(t *testing.T) {
	settings := UserSettings{}

	settings.ToggleEssential(CategoryHousing)
	assert.True(t, settings.IsEssential(CategoryHousing))

	settings.ToggleEssential(CategoryHousing)
	assert.False(t, settings.IsEssential(CategoryHousing))
}
