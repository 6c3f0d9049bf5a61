package service

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/locvowork/staff_attendance/internal/database"
	"github.com/locvowork/staff_attendance/internal/domain"
	"github.com/locvowork/staff_attendance/internal/logger"
	"github.com/locvowork/staff_attendance/internal/repository"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// fixedClock returns a settable instant
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func at(date string, hour, minute int) *fixedClock {
	d, err := time.ParseInLocation(domain.DateLayout, date, time.Local)
	if err != nil {
		panic(err)
	}
	return &fixedClock{now: d.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)}
}

// failingStore wraps a KVStore and fails writes on demand
type failingStore struct {
	domain.KVStore
	failSet bool
}

var errWriteFailed = errors.New("disk full")

func (s *failingStore) Set(ctx context.Context, key, value string) error {
	if s.failSet {
		return errWriteFailed
	}
	return s.KVStore.Set(ctx, key, value)
}

// sequenceIDs replays ids in order
type sequenceIDs struct {
	ids []string
	i   int
}

func (s *sequenceIDs) NewID() string {
	id := s.ids[s.i%len(s.ids)]
	s.i++
	return id
}

// emptySeeder seeds nothing so tests start from a blank slate
type emptySeeder struct{}

func (emptySeeder) SeedRecords(time.Time) []domain.AttendanceRecord { return nil }
func (emptySeeder) SeedStaff() []domain.StaffMember                 { return nil }

func strPtr(s string) *string { return &s }

func newAttendance(t *testing.T, store domain.KVStore, clock domain.Clock, opts ...AttendanceOption) *AttendanceService {
	t.Helper()
	svc := NewAttendanceService(repository.NewAttendanceRepository(store), emptySeeder{}, clock, opts...)
	if err := svc.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return svc
}

func newMemoryStore() domain.KVStore { return database.NewMemoryStore() }
