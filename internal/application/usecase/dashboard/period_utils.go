package dashboard

import (
	"time"

	"github.com/spendtrack/backend/internal/domain/entity"
)

// PeriodStart returns the first day of the time-frame period containing date.
func PeriodStart(date time.Time, tf entity.TimeFrame) time.Time {
	date = Day(date)

	switch tf {
	case entity.TimeFrameYearly:
		return time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	case entity.TimeFrameMonthly:
		return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	case entity.TimeFrameWeekly:
		return getWeekStartDate(date)
	default:
		return date
	}
}

// PeriodEnd returns the last day of the time-frame period containing date.
func PeriodEnd(date time.Time, tf entity.TimeFrame) time.Time {
	start := PeriodStart(date, tf)

	switch tf {
	case entity.TimeFrameYearly:
		return start.AddDate(1, 0, -1)
	case entity.TimeFrameMonthly:
		return start.AddDate(0, 1, -1)
	case entity.TimeFrameWeekly:
		return start.AddDate(0, 0, 6)
	default:
		return start
	}
}

// getWeekStartDate returns the Monday of the week containing the given date.
func getWeekStartDate(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	daysFromMonday := weekday - 1
	return time.Date(date.Year(), date.Month(), date.Day()-daysFromMonday, 0, 0, 0, 0, time.UTC)
}

// monthStart returns the first day of the month containing date, shifted by offset months.
func monthStart(date time.Time, offset int) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, offset, 0)
}
