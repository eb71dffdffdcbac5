package mock

import (
	"sync"
	"time"
)

// Time is a clock pinned to a chosen date that keeps ticking from there.
type Time struct {
	mu               sync.Mutex
	currentStartTime time.Time
	updatedAt        time.Time
}

func NewTime() *Time {
	now := time.Now()
	return &Time{
		currentStartTime: now,
		updatedAt:        now,
	}
}

func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.currentStartTime = currentTime
	t.updatedAt = time.Now()
}

// SetToday pins the clock to noon UTC on the given YYYY-MM-DD date.
func (t *Time) SetToday(date string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}
	t.SetCurrentTime(day.Add(12 * time.Hour))
	return nil
}

func (t *Time) Reset() {
	t.SetCurrentTime(time.Now())
}

func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.currentStartTime.Add(time.Since(t.updatedAt))
}
