package dashboard

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	domainerror "github.com/spendtrack/backend/internal/domain/error"
)

func d(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestResolveTimeRange(t *testing.T) {
	today := d("2024-05-15")
	earliest := d("2023-11-20")

	tests := []struct {
		name      string
		selector  TimeRangeSelector
		today     time.Time
		earliest  *time.Time
		custom    *DateRange
		wantStart string
		wantEnd   string
		wantOK    bool
	}{
		{
			name:      "year runs from January first to today",
			selector:  TimeRangeYear,
			today:     today,
			wantStart: "2024-01-01",
			wantEnd:   "2024-05-15",
			wantOK:    true,
		},
		{
			name:      "3m covers two full prior months and the whole current month",
			selector:  TimeRange3Months,
			today:     today,
			wantStart: "2024-03-01",
			wantEnd:   "2024-05-31",
			wantOK:    true,
		},
		{
			name:      "3m crosses the year boundary in January",
			selector:  TimeRange3Months,
			today:     d("2024-01-10"),
			wantStart: "2023-11-01",
			wantEnd:   "2024-01-31",
			wantOK:    true,
		},
		{
			name:      "1m covers the current month",
			selector:  TimeRange1Month,
			today:     d("2024-02-10"),
			wantStart: "2024-02-01",
			wantEnd:   "2024-02-29",
			wantOK:    true,
		},
		{
			name:      "7d ends today and spans seven days",
			selector:  TimeRange7Days,
			today:     today,
			wantStart: "2024-05-09",
			wantEnd:   "2024-05-15",
			wantOK:    true,
		},
		{
			name:      "all starts at the earliest transaction",
			selector:  TimeRangeAll,
			today:     today,
			earliest:  &earliest,
			wantStart: "2023-11-20",
			wantEnd:   "2024-05-15",
			wantOK:    true,
		},
		{
			name:     "all without transactions is empty",
			selector: TimeRangeAll,
			today:    today,
			wantOK:   false,
		},
		{
			name:      "custom returns the caller's endpoints",
			selector:  TimeRangeCustom,
			today:     today,
			custom:    &DateRange{Start: d("2022-02-02"), End: d("2022-03-03")},
			wantStart: "2022-02-02",
			wantEnd:   "2022-03-03",
			wantOK:    true,
		},
		{
			name:      "time of day on today is ignored",
			selector:  TimeRange7Days,
			today:     time.Date(2024, 5, 15, 23, 59, 0, 0, time.UTC),
			wantStart: "2024-05-09",
			wantEnd:   "2024-05-15",
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, ok, err := ResolveTimeRange(tt.selector, tt.today, tt.earliest, tt.custom)
			require.NoError(t, err)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantStart, FormatDate(rng.Start))
			assert.Equal(t, tt.wantEnd, FormatDate(rng.End))
		})
	}
}

func TestResolveTimeRangeErrors(t *testing.T) {
	tests := []struct {
		name     string
		selector TimeRangeSelector
		custom   *DateRange
		wantCode domainerror.DashboardErrorCode
	}{
		{
			name:     "unknown selector is rejected",
			selector: "fortnight",
			wantCode: domainerror.ErrCodeInvalidTimeRange,
		},
		{
			name:     "custom without a range is rejected",
			selector: TimeRangeCustom,
			wantCode: domainerror.ErrCodeMissingCustomRange,
		},
		{
			name:     "custom with one endpoint is rejected",
			selector: TimeRangeCustom,
			custom:   &DateRange{Start: d("2024-01-01")},
			wantCode: domainerror.ErrCodeMissingCustomRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ResolveTimeRange(tt.selector, d("2024-05-15"), nil, tt.custom)
			var dashErr *domainerror.DashboardError
			require.True(t, errors.As(err, &dashErr))
			assert.Equal(t, tt.wantCode, dashErr.Code)
		})
	}
}

func TestEnumerateDays(t *testing.T) {
	t.Run("start after end yields nothing", func(t *testing.T) {
		assert.Empty(t, EnumerateDays(d("2024-01-02"), d("2024-01-01")))
	})

	t.Run("start equal to end yields that day", func(t *testing.T) {
		days := EnumerateDays(d("2024-01-01"), d("2024-01-01"))
		require.Len(t, days, 1)
		assert.Equal(t, "2024-01-01", FormatDate(days[0]))
	})

	t.Run("leap day is included", func(t *testing.T) {
		days := EnumerateDays(d("2024-02-28"), d("2024-03-01"))
		require.Len(t, days, 3)
		assert.Equal(t, "2024-02-29", FormatDate(days[1]))
	})

	t.Run("count is the day difference plus one, ascending with no gaps", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			start := d("2020-01-01").AddDate(0, 0, rapid.IntRange(0, 2000).Draw(t, "start"))
			span := rapid.IntRange(0, 800).Draw(t, "span")
			end := start.AddDate(0, 0, span)

			days := EnumerateDays(start, end)
			require.Len(t, days, span+1)
			require.True(t, days[0].Equal(start))
			require.True(t, days[len(days)-1].Equal(end))
			for i := 1; i < len(days); i++ {
				require.True(t, days[i].Equal(days[i-1].AddDate(0, 0, 1)))
			}
		})
	})
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-09")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", FormatDate(got))

	_, err = ParseDate("09/03/2024")
	var dashErr *domainerror.DashboardError
	require.True(t, errors.As(err, &dashErr))
	assert.Equal(t, domainerror.ErrCodeInvalidDateFormat, dashErr.Code)
}
