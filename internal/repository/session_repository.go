package repository

import (
	"context"
	"fmt"

	"github.com/locvowork/staff_attendance/internal/domain"
)

type sessionRepository struct {
	store domain.KVStore
}

// NewSessionRepository creates a repository persisting the logged in user under domain.SessionKey
func NewSessionRepository(store domain.KVStore) domain.SessionRepository {
	return &sessionRepository{store: store}
}

// Load returns the persisted user. A malformed session is removed from the store.
func (r *sessionRepository) Load(ctx context.Context) (*domain.User, bool, error) {
	raw, ok, err := r.store.Get(ctx, domain.SessionKey)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read session: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	var user domain.User
	if !decodeJSON(ctx, domain.SessionKey, raw, &user) || user.ID == "" {
		if err := r.Clear(ctx); err != nil {
			return nil, false, err
		}
		return nil, false, nil
	}
	return &user, true, nil
}

func (r *sessionRepository) Save(ctx context.Context, user domain.User) error {
	return saveJSON(ctx, r.store, domain.SessionKey, user)
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	if err := r.store.Remove(ctx, domain.SessionKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
