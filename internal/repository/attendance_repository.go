package repository

import (
	"context"

	"github.com/locvowork/staff_attendance/internal/domain"
)

type attendanceRepository struct {
	store domain.KVStore
}

// NewAttendanceRepository creates a repository persisting records under domain.RecordsKey
func NewAttendanceRepository(store domain.KVStore) domain.AttendanceRepository {
	return &attendanceRepository{store: store}
}

func (r *attendanceRepository) Load(ctx context.Context) ([]domain.AttendanceRecord, bool, error) {
	var records []domain.AttendanceRecord
	found, err := loadJSON(ctx, r.store, domain.RecordsKey, &records)
	if err != nil || !found {
		return nil, false, err
	}
	// JSON null decodes without error but is not a collection
	if records == nil {
		return nil, false, nil
	}
	return records, true, nil
}

func (r *attendanceRepository) Save(ctx context.Context, records []domain.AttendanceRecord) error {
	if records == nil {
		records = []domain.AttendanceRecord{}
	}
	return saveJSON(ctx, r.store, domain.RecordsKey, records)
}
