package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/locvowork/staff_attendance/internal/domain"
	"github.com/locvowork/staff_attendance/internal/logger"
)

// maxIDAttempts bounds the retries when a generated id is already on the roster
const maxIDAttempts = 5

// StaffService owns the staff roster
type StaffService struct {
	repo   domain.StaffRepository
	seeder domain.StaffSeeder
	ids    domain.IDGenerator

	mu    sync.RWMutex
	staff []domain.StaffMember
}

// NewStaffService creates a new StaffService instance
func NewStaffService(repo domain.StaffRepository, seeder domain.StaffSeeder, ids domain.IDGenerator) *StaffService {
	return &StaffService{
		repo:   repo,
		seeder: seeder,
		ids:    ids,
	}
}

// Initialize loads the persisted roster or falls back to the demo roster.
func (s *StaffService) Initialize(ctx context.Context) error {
	staff, found, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load staff: %w", err)
	}
	if !found {
		staff = s.seeder.SeedStaff()
		logger.WarnLog(ctx, "No persisted staff roster, using %d demo staff members", len(staff))
	}

	s.mu.Lock()
	s.staff = staff
	s.mu.Unlock()
	return nil
}

// AddStaffMember appends a member with a fresh id and persists the roster.
// Input is stored as given.
func (s *StaffService) AddStaffMember(ctx context.Context, in domain.NewStaffMember) (domain.StaffMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.uniqueID()
	if err != nil {
		return domain.StaffMember{}, err
	}

	member := domain.StaffMember{
		ID:         id,
		Name:       in.Name,
		Email:      in.Email,
		Department: in.Department,
		JoinDate:   in.JoinDate,
	}

	next := make([]domain.StaffMember, len(s.staff), len(s.staff)+1)
	copy(next, s.staff)
	next = append(next, member)

	if err := s.repo.Save(ctx, next); err != nil {
		logger.ErrorLog(ctx, "Failed to persist staff roster", err)
		return domain.StaffMember{}, fmt.Errorf("failed to save staff: %w", err)
	}
	s.staff = next

	logger.InfoLog(ctx, "Added staff member %s (%s)", member.ID, member.Name)
	return member, nil
}

// ListStaff returns the roster in insertion order.
func (s *StaffService) ListStaff() []domain.StaffMember {
	s.mu.RLock()
	defer s.mu.RUnlock()

	staff := make([]domain.StaffMember, len(s.staff))
	copy(staff, s.staff)
	return staff
}

func (s *StaffService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.staff)
}

// Get looks up a member by id.
func (s *StaffService) Get(id string) (domain.StaffMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.staff {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.StaffMember{}, fmt.Errorf("staff %s: %w", id, domain.ErrStaffNotFound)
}

// uniqueID draws ids until one is not on the roster. Callers hold s.mu.
func (s *StaffService) uniqueID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.ids.NewID()
		if !s.hasID(id) {
			return id, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique staff id after %d attempts", maxIDAttempts)
}

func (s *StaffService) hasID(id string) bool {
	for _, m := range s.staff {
		if m.ID == id {
			return true
		}
	}
	return false
}
