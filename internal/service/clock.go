package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/locvowork/staff_attendance/internal/domain"
)

// SystemClock reads the local wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// UUIDGenerator issues random (v4) identifiers
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }

// LateCutoff is the last minute of the day that still counts as on time
type LateCutoff struct {
	Hour   int
	Minute int
}

// DefaultLateCutoff is 09:30: a check-in at 09:31 or later is late.
var DefaultLateCutoff = LateCutoff{Hour: 9, Minute: 30}

// ParseLateCutoff parses an HH:MM cutoff.
func ParseLateCutoff(s string) (LateCutoff, error) {
	t, err := time.Parse(domain.TimeLayout, s)
	if err != nil {
		return LateCutoff{}, fmt.Errorf("invalid late cutoff %q: %w", s, err)
	}
	return LateCutoff{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// StatusAt classifies a check-in at t.
func (c LateCutoff) StatusAt(t time.Time) domain.AttendanceStatus {
	if t.Hour() > c.Hour || (t.Hour() == c.Hour && t.Minute() > c.Minute) {
		return domain.StatusLate
	}
	return domain.StatusPresent
}

func (c LateCutoff) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
