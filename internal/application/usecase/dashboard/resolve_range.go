package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RangeInput is the window selection shared by every chart request.
type RangeInput struct {
	Selector TimeRangeSelector
	// Custom is read only when Selector is TimeRangeCustom.
	Custom *DateRange
}

// resolveRange resolves the requested window for a user, reading the
// earliest transaction date only when the selector needs it.
func resolveRange(
	ctx context.Context,
	repo DashboardRepository,
	userID uuid.UUID,
	now time.Time,
	in RangeInput,
) (DateRange, bool, error) {
	selector := in.Selector
	if selector == "" {
		selector = DefaultTimeRange
	}

	var earliest *time.Time
	if selector == TimeRangeAll {
		dateRange, err := repo.GetDateRange(ctx, userID)
		if err != nil {
			return DateRange{}, false, fmt.Errorf("failed to get date range: %w", err)
		}
		earliest = dateRange.Earliest
	}

	return ResolveTimeRange(selector, now, earliest, in.Custom)
}

func systemClock() time.Time {
	return time.Now().UTC()
}

func clockOrSystem(clock Clock) Clock {
	if clock == nil {
		return systemClock
	}
	return clock
}
