package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spendtrack/backend/internal/domain/entity"
)

func TestPeriodBounds(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		timeFrame entity.TimeFrame
		wantStart string
		wantEnd   string
	}{
		{"yearly spans the calendar year", "2024-05-15", entity.TimeFrameYearly, "2024-01-01", "2024-12-31"},
		{"monthly ends on the last day of a leap February", "2024-02-10", entity.TimeFrameMonthly, "2024-02-01", "2024-02-29"},
		{"monthly ends on the thirtieth in April", "2024-04-30", entity.TimeFrameMonthly, "2024-04-01", "2024-04-30"},
		{"weekly starts on Monday for a Wednesday", "2024-05-15", entity.TimeFrameWeekly, "2024-05-13", "2024-05-19"},
		{"weekly treats Sunday as the last day", "2024-05-19", entity.TimeFrameWeekly, "2024-05-13", "2024-05-19"},
		{"weekly on a Monday starts that day", "2024-05-13", entity.TimeFrameWeekly, "2024-05-13", "2024-05-19"},
		{"weekly crosses a year boundary", "2025-01-01", entity.TimeFrameWeekly, "2024-12-30", "2025-01-05"},
		{"daily is the day itself", "2024-05-15", entity.TimeFrameDaily, "2024-05-15", "2024-05-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStart, FormatDate(PeriodStart(d(tt.date), tt.timeFrame)))
			assert.Equal(t, tt.wantEnd, FormatDate(PeriodEnd(d(tt.date), tt.timeFrame)))
		})
	}
}
