package repository

import (
	"context"

	"github.com/locvowork/staff_attendance/internal/domain"
)

type staffRepository struct {
	store domain.KVStore
}

// NewStaffRepository creates a repository persisting the roster under domain.StaffKey
func NewStaffRepository(store domain.KVStore) domain.StaffRepository {
	return &staffRepository{store: store}
}

func (r *staffRepository) Load(ctx context.Context) ([]domain.StaffMember, bool, error) {
	var staff []domain.StaffMember
	found, err := loadJSON(ctx, r.store, domain.StaffKey, &staff)
	if err != nil || !found {
		return nil, false, err
	}
	if staff == nil {
		return nil, false, nil
	}
	return staff, true, nil
}

func (r *staffRepository) Save(ctx context.Context, staff []domain.StaffMember) error {
	if staff == nil {
		staff = []domain.StaffMember{}
	}
	return saveJSON(ctx, r.store, domain.StaffKey, staff)
}
