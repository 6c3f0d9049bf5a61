package builder

import (
	"testing"
)

func TestSQLBuilder(t *testing.T) {
	t.Run("Select", func(t *testing.T) {
		b := NewSQLBuilder()
		query, args := b.Select("kv_value").From("kv_store").Where("kv_key = ?", "attendance_staff").Limit(1).Build()
		expected := "SELECT kv_value FROM kv_store WHERE kv_key = $1 LIMIT 1"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
		if len(args) != 1 || args[0] != "attendance_staff" {
			t.Errorf("expected args [attendance_staff], got %v", args)
		}
	})

	t.Run("Insert", func(t *testing.T) {
		b := NewSQLBuilder()
		query, args := b.Insert("kv_store", "kv_key", "kv_value").Values("k", "v").Build()
		expected := "INSERT INTO kv_store (kv_key, kv_value) VALUES ($1, $2)"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
		if len(args) != 2 || args[0] != "k" || args[1] != "v" {
			t.Errorf("expected args [k v], got %v", args)
		}
	})

	t.Run("Upsert", func(t *testing.T) {
		b := NewSQLBuilder()
		query, args := b.Insert("kv_store", "kv_key", "kv_value", "updated_at").
			Values("k", "v", "now").
			OnConflict([]string{"kv_key"}, "kv_value", "updated_at").
			Build()
		expected := "INSERT INTO kv_store (kv_key, kv_value, updated_at) VALUES ($1, $2, $3) " +
			"ON CONFLICT (kv_key) DO UPDATE SET kv_value = EXCLUDED.kv_value, updated_at = EXCLUDED.updated_at"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
		if len(args) != 3 {
			t.Errorf("expected 3 args, got %v", args)
		}
	})

	t.Run("Insert do nothing", func(t *testing.T) {
		b := NewSQLBuilder()
		query, _ := b.Insert("kv_store", "kv_key").Values("k").OnConflict([]string{"kv_key"}).Build()
		expected := "INSERT INTO kv_store (kv_key) VALUES ($1) ON CONFLICT (kv_key) DO NOTHING"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		b := NewSQLBuilder()
		query, args := b.Delete("kv_store").Where("kv_key = ?", "k").Build()
		expected := "DELETE FROM kv_store WHERE kv_key = $1"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
		if len(args) != 1 {
			t.Errorf("expected 1 arg, got %v", args)
		}
	})

	t.Run("Multiple where", func(t *testing.T) {
		b := NewSQLBuilder()
		query, args := b.Select("kv_key").From("kv_store").
			Where("kv_key LIKE ?", "attendance_%").
			Where("updated_at > ?", "2024-01-01").
			Build()
		expected := "SELECT kv_key FROM kv_store WHERE kv_key LIKE $1 AND updated_at > $2"
		if query != expected {
			t.Errorf("expected %s, got %s", expected, query)
		}
		if len(args) != 2 {
			t.Errorf("expected 2 args, got %v", args)
		}
	})
}

func TestSQLBuilderBuildSafe(t *testing.T) {
	t.Run("valid query", func(t *testing.T) {
		_, args, err := NewSQLBuilder().Select("*").From("kv_store").Where("kv_key = ?", "k").BuildSafe()
		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if len(args) != 1 {
			t.Errorf("expected 1 arg, got %d", len(args))
		}
	})

	t.Run("missing argument", func(t *testing.T) {
		_, _, err := NewSQLBuilder().Select("*").From("kv_store").Where("kv_key = ? AND kv_value = ?", "k").BuildSafe()
		if err == nil {
			t.Error("expected placeholder mismatch error")
		}
	})

	t.Run("column value mismatch", func(t *testing.T) {
		_, _, err := NewSQLBuilder().Insert("kv_store", "kv_key", "kv_value").Values("k").BuildSafe()
		if err == nil {
			t.Error("expected column/value mismatch error")
		}
	})

	t.Run("no table", func(t *testing.T) {
		_, _, err := NewSQLBuilder().Select("*").BuildSafe()
		if err == nil {
			t.Error("expected missing table error")
		}
	})
}
