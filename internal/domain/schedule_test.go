package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverrideCovers(t *testing.T) {
	override := &OverridePeriod{
		StartDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 4, 9, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, override.Covers(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, override.Covers(time.Date(2024, 4, 9, 23, 30, 0, 0, time.UTC)))
	assert.True(t, override.Covers(time.Date(2024, 3, 25, 12, 0, 0, 0, time.UTC)))
	assert.False(t, override.Covers(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)))
	assert.False(t, override.Covers(time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)))
}

func TestResolvedHoursIsWorkingDay(t *testing.T) {
	// Sunday through Thursday, the Gulf working week.
	hours := ResolvedHours{WorkingDays: []int{0, 1, 2, 3, 4}}

	sunday := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	thursday := time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC)
	friday := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, hours.IsWorkingDay(sunday))
	assert.True(t, hours.IsWorkingDay(thursday))
	assert.False(t, hours.IsWorkingDay(friday))
	assert.False(t, hours.IsWorkingDay(saturday))
}

func TestDateOnly(t *testing.T) {
	stamp := time.Date(2024, 6, 10, 15, 45, 30, 999, time.UTC)
	day := DateOnly(stamp)

	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), day)
	assert.Equal(t, day, DateOnly(day))
}
