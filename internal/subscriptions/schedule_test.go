package subscriptions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiffinmate/tiffinmate/internal/dates"
)

func TestScheduleDatesCrossMonth(t *testing.T) {
	start := dates.New(2024, time.January, 30)
	end := dates.New(2024, time.February, 2)

	days := scheduleDates(start, end)

	require.Len(t, days, 4)
	assert.Equal(t, "2024-01-30", days[0].String())
	assert.Equal(t, "2024-01-31", days[1].String())
	assert.Equal(t, "2024-02-01", days[2].String())
	assert.Equal(t, "2024-02-02", days[3].String())
}

func TestScheduleDatesSingleDay(t *testing.T) {
	day := dates.New(2024, time.June, 15)
	days := scheduleDates(day, day)

	require.Len(t, days, 1)
	assert.Equal(t, day, days[0])
}

func TestScheduleDatesCount(t *testing.T) {
	cases := []struct {
		start, end dates.Date
		want       int
	}{
		{dates.New(2024, time.March, 1), dates.New(2024, time.March, 31), 31},
		{dates.New(2024, time.February, 1), dates.New(2024, time.February, 29), 29}, // leap year
		{dates.New(2023, time.February, 1), dates.New(2023, time.February, 28), 28},
		{dates.New(2024, time.December, 30), dates.New(2025, time.January, 2), 4}, // year boundary
	}

	for _, tc := range cases {
		days := scheduleDates(tc.start, tc.end)
		require.Len(t, days, tc.want, "range %s..%s", tc.start, tc.end)
		require.Equal(t, tc.start.DaysUntil(tc.end)+1, len(days))

		// Consecutive, no gaps or duplicates.
		for i := 1; i < len(days); i++ {
			assert.Equal(t, days[i-1].AddDays(1), days[i])
		}
	}
}

func TestScheduleDatesInvertedRange(t *testing.T) {
	days := scheduleDates(dates.New(2024, time.March, 2), dates.New(2024, time.March, 1))
	assert.Empty(t, days)
}
