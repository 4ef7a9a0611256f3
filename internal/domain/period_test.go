package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarYear(t *testing.T) {
	for _, year := range []int{1900, 2023, 2024, 9999} {
		period := CalendarYear(year)

		assert.Equal(t, time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), period.StartDate)
		assert.Equal(t, time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC), period.EndDate)
		assert.Equal(t, year, period.Year)
	}
}

func TestPeriod_Previous(t *testing.T) {
	previous := CalendarYear(2024).Previous()

	assert.Equal(t, CalendarYear(2023), previous)
	assert.Equal(t, PeriodResponse{
		Year:      2023,
		Label:     "2023",
		StartDate: "2023-01-01",
		EndDate:   "2023-12-31",
	}, previous.Response())
}

func TestParsePeriodType(t *testing.T) {
	tests := []struct {
		value   string
		want    PeriodType
		wantErr bool
	}{
		{value: "", want: PeriodMonthly},
		{value: "monthly", want: PeriodMonthly},
		{value: "quarterly", want: PeriodQuarterly},
		{value: "weekly", want: PeriodWeekly},
		{value: "yearly", wantErr: true},
		{value: "Monthly", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParsePeriodType(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
