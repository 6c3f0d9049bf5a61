package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/locvowork/staff_attendance/internal/domain"
	"github.com/locvowork/staff_attendance/internal/logger"
)

// loadJSON reads key from store and decodes it into out.
// Missing and malformed values both report found=false; only store failures are errors.
func loadJSON(ctx context.Context, store domain.KVStore, key string, out interface{}) (bool, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	return decodeJSON(ctx, key, raw, out), nil
}

// decodeJSON reports whether raw decoded cleanly into out.
func decodeJSON(ctx context.Context, key, raw string, out interface{}) bool {
	if raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		logger.WarnLog(ctx, "Discarding malformed value for key %s: %v", key, err)
		return false
	}
	return true
}

func saveJSON(ctx context.Context, store domain.KVStore, key string, in interface{}) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
