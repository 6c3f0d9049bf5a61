package database

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/locvowork/staff_attendance/internal/domain"
	"github.com/locvowork/staff_attendance/internal/repository"
)

// SeedDays is how many calendar days of history the demo dataset covers
const SeedDays = 7

var demoStaff = []domain.StaffMember{
	{ID: "2", Name: "Jane Staff", Email: "staff@attendance.com", Department: "Engineering", JoinDate: "2024-01-15"},
	{ID: "3", Name: "Mike Johnson", Email: "mike@attendance.com", Department: "Marketing", JoinDate: "2024-02-01"},
	{ID: "4", Name: "Sarah Wilson", Email: "sarah@attendance.com", Department: "Design", JoinDate: "2024-03-10"},
	{ID: "5", Name: "Tom Brown", Email: "tom@attendance.com", Department: "Sales", JoinDate: "2024-01-20"},
}

// DataSeeder generates the demo roster and attendance history.
// Output is deterministic for a given seed and reference day.
type DataSeeder struct {
	seed int64
}

func NewDataSeeder(seed int64) *DataSeeder {
	return &DataSeeder{seed: seed}
}

// SeedStaff returns a copy of the demo roster.
func (ds *DataSeeder) SeedStaff() []domain.StaffMember {
	staff := make([]domain.StaffMember, len(demoStaff))
	copy(staff, demoStaff)
	return staff
}

// SeedRecords builds one record per demo staff member for each weekday in the
// SeedDays calendar days before today.
func (ds *DataSeeder) SeedRecords(today time.Time) []domain.AttendanceRecord {
	rng := rand.New(rand.NewSource(ds.seed))
	var records []domain.AttendanceRecord

	for _, staff := range demoStaff {
		for i := 1; i <= SeedDays; i++ {
			day := today.AddDate(0, 0, -i)
			if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
				continue
			}
			records = append(records, seedRecord(rng, staff, day.Format(domain.DateLayout)))
		}
	}
	return records
}

func seedRecord(rng *rand.Rand, staff domain.StaffMember, date string) domain.AttendanceRecord {
	status := domain.StatusPresent
	if rng.Float64() <= 0.1 {
		if rng.Float64() > 0.5 {
			status = domain.StatusLate
		} else {
			status = domain.StatusAbsent
		}
	}

	record := domain.AttendanceRecord{
		ID:        domain.RecordID(staff.ID, date),
		StaffID:   staff.ID,
		StaffName: staff.Name,
		Date:      date,
		Status:    status,
	}

	switch status {
	case domain.StatusPresent:
		// 08:00 - 09:29
		checkIn := clockTime(8, 0, 89, rng)
		record.CheckIn = &checkIn
	case domain.StatusLate:
		// 09:31 - 09:59
		checkIn := clockTime(9, 31, 28, rng)
		record.CheckIn = &checkIn
	}
	if record.CheckIn != nil {
		// 17:00 - 18:59
		checkOut := clockTime(17, 0, 119, rng)
		record.CheckOut = &checkOut
	}
	return record
}

// clockTime returns HH:MM for a random minute in [h:m, h:m+span].
func clockTime(hour, minute, span int, rng *rand.Rand) string {
	total := hour*60 + minute + rng.Intn(span+1)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// Presets
type SeedPreset string

const (
	PresetDemo  SeedPreset = "demo"
	PresetEmpty SeedPreset = "empty"
)

// SeedStore writes the demo dataset (or an empty one) straight into store,
// replacing whatever was there.
func (ds *DataSeeder) SeedStore(ctx context.Context, store domain.KVStore, preset SeedPreset, today time.Time) (int, int, error) {
	staffRepo := repository.NewStaffRepository(store)
	recordRepo := repository.NewAttendanceRepository(store)

	staff := ds.SeedStaff()
	records := ds.SeedRecords(today)
	if preset == PresetEmpty {
		staff = []domain.StaffMember{}
		records = []domain.AttendanceRecord{}
	}

	if err := staffRepo.Save(ctx, staff); err != nil {
		return 0, 0, fmt.Errorf("failed to seed staff: %w", err)
	}
	if err := recordRepo.Save(ctx, records); err != nil {
		return 0, 0, fmt.Errorf("failed to seed records: %w", err)
	}
	if err := store.Remove(ctx, domain.SessionKey); err != nil {
		return 0, 0, fmt.Errorf("failed to clear session: %w", err)
	}
	return len(staff), len(records), nil
}

// ClearData removes every persisted collection from store.
func (ds *DataSeeder) ClearData(ctx context.Context, store domain.KVStore) error {
	for _, key := range []string{domain.RecordsKey, domain.StaffKey, domain.SessionKey} {
		if err := store.Remove(ctx, key); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}
	return nil
}
