// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"time"

	domainerror "github.com/spendtrack/backend/internal/domain/error"
)

// TimeRangeSelector names a symbolic date window.
type TimeRangeSelector string

const (
	TimeRangeAll     TimeRangeSelector = "all"
	TimeRangeCustom  TimeRangeSelector = "custom"
	TimeRangeYear    TimeRangeSelector = "year"
	TimeRange3Months TimeRangeSelector = "3m"
	TimeRange1Month  TimeRangeSelector = "1m"
	TimeRange7Days   TimeRangeSelector = "7d"
)

// DefaultTimeRange is used when the caller does not pick a selector.
const DefaultTimeRange = TimeRange3Months

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// IsValid reports whether the selector is known.
func (s TimeRangeSelector) IsValid() bool {
	switch s {
	case TimeRangeAll, TimeRangeCustom, TimeRangeYear, TimeRange3Months, TimeRange1Month, TimeRange7Days:
		return true
	}
	return false
}

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether day falls within the range, endpoints included.
func (r DateRange) Contains(day time.Time) bool {
	return !day.Before(r.Start) && !day.After(r.End)
}

// Days returns the number of calendar days in the range, or 0 when Start is after End.
func (r DateRange) Days() int {
	if r.Start.After(r.End) {
		return 0
	}
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Day returns the UTC midnight of t's calendar date.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a UTC calendar day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateFormat,
			domainerror.ErrInvalidDateFormat.Error(),
			err,
		)
	}
	return t, nil
}

// FormatDate renders a calendar day as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ResolveTimeRange turns a selector into a concrete inclusive range.
// earliest is the user's oldest transaction date and is only read for
// TimeRangeAll; custom is only read for TimeRangeCustom. The boolean is
// false when the range is empty, which happens for TimeRangeAll on a user
// with no transactions.
func ResolveTimeRange(
	selector TimeRangeSelector,
	today time.Time,
	earliest *time.Time,
	custom *DateRange,
) (DateRange, bool, error) {
	today = Day(today)

	switch selector {
	case TimeRangeYear:
		return DateRange{
			Start: time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   today,
		}, true, nil
	case TimeRange3Months:
		firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return DateRange{
			Start: firstOfMonth.AddDate(0, -2, 0),
			End:   firstOfMonth.AddDate(0, 1, -1),
		}, true, nil
	case TimeRange1Month:
		firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return DateRange{
			Start: firstOfMonth,
			End:   firstOfMonth.AddDate(0, 1, -1),
		}, true, nil
	case TimeRange7Days:
		return DateRange{
			Start: today.AddDate(0, 0, -6),
			End:   today,
		}, true, nil
	case TimeRangeAll:
		if earliest == nil {
			return DateRange{}, false, nil
		}
		return DateRange{Start: Day(*earliest), End: today}, true, nil
	case TimeRangeCustom:
		if custom == nil || custom.Start.IsZero() || custom.End.IsZero() {
			return DateRange{}, false, domainerror.NewDashboardError(
				domainerror.ErrCodeMissingCustomRange,
				domainerror.ErrMissingCustomRange.Error(),
				nil,
			)
		}
		return DateRange{Start: Day(custom.Start), End: Day(custom.End)}, true, nil
	default:
		return DateRange{}, false, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidTimeRange,
			domainerror.ErrInvalidTimeRange.Error(),
			nil,
		)
	}
}

// EnumerateDays returns every calendar day from start to end inclusive in
// ascending order. It returns nil when start is after end.
func EnumerateDays(start, end time.Time) []time.Time {
	start, end = Day(start), Day(end)
	if start.After(end) {
		return nil
	}

	days := make([]time.Time, 0, DateRange{Start: start, End: end}.Days())
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
