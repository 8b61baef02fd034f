package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDateRange(t *testing.T) {
	// Wednesday, mid-month, fixed clock
	now := time.Date(2025, time.March, 12, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		filter    string
		startDate string
		endDate   string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "today",
			filter:    FilterToday,
			wantStart: time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.March, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "yesterday",
			filter:    FilterYesterday,
			wantStart: time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "last7days",
			filter:    FilterLast7Days,
			wantStart: time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.March, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "thismonth",
			filter:    FilterThisMonth,
			wantStart: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "lastmonth",
			filter:    FilterLastMonth,
			wantStart: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "custom inclusive end",
			filter:    FilterCustom,
			startDate: "2025-01-10",
			endDate:   "2025-01-20",
			wantStart: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.January, 21, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ResolveDateRange(tt.filter, tt.startDate, tt.endDate, now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestResolveDateRangeCustomRequiresBounds(t *testing.T) {
	now := time.Now()

	_, _, err := ResolveDateRange(FilterCustom, "", "", now)
	assert.ErrorIs(t, err, ErrCustomRangeBounds)

	_, _, err = ResolveDateRange(FilterCustom, "2025-01-10", "", now)
	assert.ErrorIs(t, err, ErrCustomRangeBounds)

	_, _, err = ResolveDateRange(FilterCustom, "", "2025-01-20", now)
	assert.ErrorIs(t, err, ErrCustomRangeBounds)
}

func TestResolveDateRangeRejectsBadInput(t *testing.T) {
	now := time.Now()

	_, _, err := ResolveDateRange("fortnight", "", "", now)
	assert.Error(t, err)

	_, _, err = ResolveDateRange(FilterCustom, "2025-01-20", "2025-01-10", now)
	assert.Error(t, err)

	_, _, err = ResolveDateRange(FilterCustom, "10/01/2025", "2025-01-20", now)
	assert.Error(t, err)
}
