package database

import (
	"context"
	"testing"
	"time"

	"github.com/locvowork/staff_attendance/internal/domain"
	"github.com/locvowork/staff_attendance/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday
var seedDay = time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)

func TestSeedRecords_WeekdaysOnly(t *testing.T) {
	records := NewDataSeeder(1).SeedRecords(seedDay)

	// Jan 3..9 contains 5 weekdays (3,4,5,8,9)
	require.Len(t, records, 5*len(demoStaff))

	seen := map[string]bool{}
	for _, r := range records {
		day, err := time.ParseInLocation(domain.DateLayout, r.Date, time.Local)
		require.NoError(t, err)
		assert.NotEqual(t, time.Saturday, day.Weekday())
		assert.NotEqual(t, time.Sunday, day.Weekday())
		assert.True(t, day.Before(seedDay))
		assert.Equal(t, domain.RecordID(r.StaffID, r.Date), r.ID)
		assert.False(t, seen[r.ID], "duplicate record %s", r.ID)
		seen[r.ID] = true
	}
	assert.False(t, seen[domain.RecordID("2", "2024-01-10")], "today is never seeded")
}

func TestSeedRecords_Deterministic(t *testing.T) {
	a := NewDataSeeder(99).SeedRecords(seedDay)
	b := NewDataSeeder(99).SeedRecords(seedDay)
	assert.Equal(t, a, b)
}

func TestSeedRecords_TimesMatchStatus(t *testing.T) {
	// several seeds so late and absent both show up
	for seed := int64(0); seed < 20; seed++ {
		for _, r := range NewDataSeeder(seed).SeedRecords(seedDay) {
			switch r.Status {
			case domain.StatusAbsent:
				assert.Nil(t, r.CheckIn)
				assert.Nil(t, r.CheckOut)
			case domain.StatusPresent:
				require.NotNil(t, r.CheckIn)
				assert.True(t, *r.CheckIn >= "08:00" && *r.CheckIn <= "09:29", *r.CheckIn)
				require.NotNil(t, r.CheckOut)
			case domain.StatusLate:
				require.NotNil(t, r.CheckIn)
				assert.True(t, *r.CheckIn >= "09:31" && *r.CheckIn <= "09:59", *r.CheckIn)
				require.NotNil(t, r.CheckOut)
			default:
				t.Fatalf("unexpected seeded status %q", r.Status)
			}
			if r.CheckOut != nil {
				assert.True(t, *r.CheckOut >= "17:00" && *r.CheckOut <= "18:59", *r.CheckOut)
			}
		}
	}
}

func TestSeedStaff_ReturnsCopy(t *testing.T) {
	ds := NewDataSeeder(1)
	staff := ds.SeedStaff()
	staff[0].Name = "changed"
	assert.Equal(t, "Jane Staff", ds.SeedStaff()[0].Name)
}

func TestSeedStoreAndClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, domain.SessionKey, `{"id":"1"}`))
	ds := NewDataSeeder(3)

	staffCount, recordCount, err := ds.SeedStore(ctx, store, PresetDemo, seedDay)
	require.NoError(t, err)
	assert.Equal(t, 4, staffCount)
	assert.Equal(t, 20, recordCount)

	staff, found, err := repository.NewStaffRepository(store).Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, staff, 4)
	assert.Equal(t, []string{domain.RecordsKey, domain.StaffKey}, store.Keys())

	require.NoError(t, ds.ClearData(ctx, store))
	assert.Empty(t, store.Keys())

	_, recordCount, err = ds.SeedStore(ctx, store, PresetEmpty, seedDay)
	require.NoError(t, err)
	assert.Zero(t, recordCount)
	records, found, err := repository.NewAttendanceRepository(store).Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, records)
}
