package domain

import (
	"context"
	"time"
)

// KVStore is the persistence boundary. Each key holds a full serialized collection.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// AttendanceRepository loads and saves the full record collection.
// Load reports found=false for missing or malformed data.
type AttendanceRepository interface {
	Load(ctx context.Context) ([]AttendanceRecord, bool, error)
	Save(ctx context.Context, records []AttendanceRecord) error
}

// StaffRepository loads and saves the full roster.
type StaffRepository interface {
	Load(ctx context.Context) ([]StaffMember, bool, error)
	Save(ctx context.Context, staff []StaffMember) error
}

// SessionRepository persists the logged in user.
type SessionRepository interface {
	Load(ctx context.Context) (*User, bool, error)
	Save(ctx context.Context, user User) error
	Clear(ctx context.Context) error
}

// RecordSeeder produces demo attendance history relative to a reference day.
type RecordSeeder interface {
	SeedRecords(today time.Time) []AttendanceRecord
}

// StaffSeeder produces the demo roster.
type StaffSeeder interface {
	SeedStaff() []StaffMember
}

// RecordIndex mirrors records into a search backend. It only narrows candidates:
// ids it returns are resolved against the repository's records.
type RecordIndex interface {
	IndexRecords(ctx context.Context, records []AttendanceRecord) error
	SearchIDs(ctx context.Context, date, query string) ([]string, error)
}

// Clock returns the current local wall-clock time.
type Clock interface {
	Now() time.Time
}

// IDGenerator produces new staff identifiers.
type IDGenerator interface {
	NewID() string
}
