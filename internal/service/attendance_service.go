package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/locvowork/staff_attendance/internal/domain"
	"github.com/locvowork/staff_attendance/internal/logger"
)

// AttendanceService owns the attendance record collection.
// Every mutation writes the whole collection through the repository before
// it becomes visible in memory.
type AttendanceService struct {
	repo   domain.AttendanceRepository
	seeder domain.RecordSeeder
	clock  domain.Clock
	cutoff LateCutoff
	index  domain.RecordIndex

	mu      sync.RWMutex
	records []domain.AttendanceRecord
}

// AttendanceOption customizes an AttendanceService
type AttendanceOption func(*AttendanceService)

// WithLateCutoff overrides DefaultLateCutoff.
func WithLateCutoff(c LateCutoff) AttendanceOption {
	return func(s *AttendanceService) { s.cutoff = c }
}

// WithRecordIndex mirrors mutations into a search index and uses it for Search.
func WithRecordIndex(index domain.RecordIndex) AttendanceOption {
	return func(s *AttendanceService) { s.index = index }
}

// NewAttendanceService creates a new AttendanceService instance
func NewAttendanceService(repo domain.AttendanceRepository, seeder domain.RecordSeeder, clock domain.Clock, opts ...AttendanceOption) *AttendanceService {
	s := &AttendanceService{
		repo:   repo,
		seeder: seeder,
		clock:  clock,
		cutoff: DefaultLateCutoff,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Initialize loads persisted records, falling back to the demo seed when
// nothing usable is stored. The seed is not persisted until the first mutation.
func (s *AttendanceService) Initialize(ctx context.Context) error {
	records, found, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load attendance records: %w", err)
	}
	if !found {
		records = s.seeder.SeedRecords(s.clock.Now())
		logger.WarnLog(ctx, "No persisted attendance records, seeded %d demo records", len(records))
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()

	s.reindex(ctx, records)
	return nil
}

// CheckIn records a check-in for staffID today. A repeated check-in overwrites
// the check-in time and status of the existing record.
func (s *AttendanceService) CheckIn(ctx context.Context, staffID, staffName string) (domain.AttendanceRecord, error) {
	now := s.clock.Now()
	today := now.Format(domain.DateLayout)
	checkIn := now.Format(domain.TimeLayout)
	status := s.cutoff.StatusAt(now)

	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneRecords(s.records)
	idx := indexOf(next, staffID, today)
	if idx >= 0 {
		next[idx].CheckIn = &checkIn
		next[idx].Status = status
	} else {
		next = append(next, domain.AttendanceRecord{
			ID:        domain.RecordID(staffID, today),
			StaffID:   staffID,
			StaffName: staffName,
			Date:      today,
			CheckIn:   &checkIn,
			Status:    status,
		})
		idx = len(next) - 1
	}

	if err := s.commit(ctx, next); err != nil {
		return domain.AttendanceRecord{}, err
	}
	logger.DebugLog(ctx, "Staff %s checked in at %s (%s)", staffID, checkIn, status)
	record := next[idx]
	s.reindex(ctx, []domain.AttendanceRecord{record})
	return record, nil
}

// CheckOut sets today's check-out time for staffID. Without a record for today
// nothing changes and found is false.
func (s *AttendanceService) CheckOut(ctx context.Context, staffID string) (domain.AttendanceRecord, bool, error) {
	now := s.clock.Now()
	today := now.Format(domain.DateLayout)
	checkOut := now.Format(domain.TimeLayout)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOf(s.records, staffID, today)
	if idx < 0 {
		logger.DebugLog(ctx, "Check-out for staff %s ignored, no record for %s", staffID, today)
		return domain.AttendanceRecord{}, false, nil
	}

	next := cloneRecords(s.records)
	next[idx].CheckOut = &checkOut

	if err := s.commit(ctx, next); err != nil {
		return domain.AttendanceRecord{}, false, err
	}
	logger.DebugLog(ctx, "Staff %s checked out at %s", staffID, checkOut)
	record := next[idx]
	s.reindex(ctx, []domain.AttendanceRecord{record})
	return record, true, nil
}

// TodayRecord returns the record for staffID today, if any.
func (s *AttendanceService) TodayRecord(staffID string) (domain.AttendanceRecord, bool) {
	today := s.Today()

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := indexOf(s.records, staffID, today)
	if idx < 0 {
		return domain.AttendanceRecord{}, false
	}
	return cloneRecord(s.records[idx]), true
}

// StaffRecords returns all records of staffID, most recent date first.
func (s *AttendanceService) StaffRecords(staffID string) []domain.AttendanceRecord {
	s.mu.RLock()
	result := filterRecords(s.records, func(r domain.AttendanceRecord) bool {
		return r.StaffID == staffID
	})
	s.mu.RUnlock()

	// ISO dates sort lexically
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date > result[j].Date
	})
	return result
}

// Records returns a snapshot of every record in storage order.
func (s *AttendanceService) Records() []domain.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecords(s.records)
}

// RecordsOn returns the records dated date, in storage order.
func (s *AttendanceService) RecordsOn(date string) []domain.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterRecords(s.records, func(r domain.AttendanceRecord) bool {
		return r.Date == date
	})
}

// Search returns the records on date whose staff name contains query, ignoring case.
// An empty query returns every record on date.
func (s *AttendanceService) Search(ctx context.Context, date, query string) []domain.AttendanceRecord {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.RecordsOn(date)
	}

	needle := strings.ToLower(query)
	matches := func(r domain.AttendanceRecord) bool {
		return r.Date == date && strings.Contains(strings.ToLower(r.StaffName), needle)
	}

	if s.index != nil {
		ids, err := s.index.SearchIDs(ctx, date, query)
		if err == nil {
			candidates := make(map[string]struct{}, len(ids))
			for _, id := range ids {
				candidates[id] = struct{}{}
			}
			s.mu.RLock()
			defer s.mu.RUnlock()
			// stale index documents have no backing record and drop out here
			return filterRecords(s.records, func(r domain.AttendanceRecord) bool {
				_, ok := candidates[r.ID]
				return ok && matches(r)
			})
		}
		logger.WarnLog(ctx, "Search index unavailable, filtering in memory: %v", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterRecords(s.records, matches)
}

// Today is the current local date as YYYY-MM-DD.
func (s *AttendanceService) Today() string {
	return s.clock.Now().Format(domain.DateLayout)
}

// commit persists next and swaps it in. Callers hold s.mu.
func (s *AttendanceService) commit(ctx context.Context, next []domain.AttendanceRecord) error {
	if err := s.repo.Save(ctx, next); err != nil {
		logger.ErrorLog(ctx, "Failed to persist attendance records", err)
		return fmt.Errorf("failed to save attendance records: %w", err)
	}
	s.records = next
	return nil
}

// reindex is best effort: the repository is the source of truth.
func (s *AttendanceService) reindex(ctx context.Context, records []domain.AttendanceRecord) {
	if s.index == nil || len(records) == 0 {
		return
	}
	if err := s.index.IndexRecords(ctx, records); err != nil {
		logger.WarnLog(ctx, "Failed to index %d attendance records: %v", len(records), err)
	}
}

func indexOf(records []domain.AttendanceRecord, staffID, date string) int {
	for i, r := range records {
		if r.StaffID == staffID && r.Date == date {
			return i
		}
	}
	return -1
}

func filterRecords(records []domain.AttendanceRecord, keep func(domain.AttendanceRecord) bool) []domain.AttendanceRecord {
	result := []domain.AttendanceRecord{}
	for _, r := range records {
		if keep(r) {
			result = append(result, cloneRecord(r))
		}
	}
	return result
}

func cloneRecords(records []domain.AttendanceRecord) []domain.AttendanceRecord {
	out := make([]domain.AttendanceRecord, len(records))
	for i, r := range records {
		out[i] = cloneRecord(r)
	}
	return out
}

// cloneRecord copies the time pointers so callers cannot mutate service state.
func cloneRecord(r domain.AttendanceRecord) domain.AttendanceRecord {
	if r.CheckIn != nil {
		v := *r.CheckIn
		r.CheckIn = &v
	}
	if r.CheckOut != nil {
		v := *r.CheckOut
		r.CheckOut = &v
	}
	return r
}
