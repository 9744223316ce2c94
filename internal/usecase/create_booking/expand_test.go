package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandDatesSingleDay(t *testing.T) {
	start := day(2024, 6, 10)

	// nil endDate and endDate == startDate expand identically.
	dates, err := expandDates(start, nil)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{start}, dates)

	end := start
	dates, err = expandDates(start, &end)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{start}, dates)
}

func TestExpandDatesRange(t *testing.T) {
	start := day(2024, 6, 1)
	end := day(2024, 6, 3)

	dates, err := expandDates(start, &end)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		day(2024, 6, 1),
		day(2024, 6, 2),
		day(2024, 6, 3),
	}, dates)
}

func TestExpandDatesDropsTimeParts(t *testing.T) {
	start := time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC)
	end := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)

	dates, err := expandDates(start, &end)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{day(2024, 6, 1), day(2024, 6, 2)}, dates)
}

func TestExpandDatesInvalidRange(t *testing.T) {
	start := day(2024, 6, 10)
	end := day(2024, 6, 9)

	_, err := expandDates(start, &end)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestExpandDatesRangeTooLong(t *testing.T) {
	start := day(2024, 6, 1)
	end := day(2024, 9, 1)

	_, err := expandDates(start, &end)
	assert.ErrorIs(t, err, ErrRangeTooLong)
}
