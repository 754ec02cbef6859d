package store

import (
	"context"
	"path/filepath"
	"testing"
)

type kv interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "consistency21.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func exerciseKV(t *testing.T, s kv) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, "k", "first"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, "k", "second"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, ok, err := s.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got != "second" {
		t.Fatalf("expected last write to win, got %q", got)
	}
	if err := s.Remove(ctx, "k"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatalf("expected key removed")
	}
	if err := s.Remove(ctx, "k"); err != nil {
		t.Fatalf("removing an absent key should succeed: %v", err)
	}
}

func TestSQLiteKeyValue(t *testing.T) {
	exerciseKV(t, openTestStore(t))
}

func TestMemoryKeyValue(t *testing.T) {
	exerciseKV(t, NewMemory())
}

func TestSQLiteUpdatedAt(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	if _, ok, err := st.UpdatedAt(ctx, "k"); err != nil || ok {
		t.Fatalf("expected no timestamp, got ok=%v err=%v", ok, err)
	}
	if err := st.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	ts, ok, err := st.UpdatedAt(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("updated at: ok=%v err=%v", ok, err)
	}
	if ts.IsZero() {
		t.Fatalf("expected non-zero timestamp")
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "consistency21.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := st.Set(context.Background(), "state", `{"goal":"x"}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() {
		_ = reopened.Close()
	}()
	got, ok, err := reopened.Get(context.Background(), "state")
	if err != nil || !ok || got != `{"goal":"x"}` {
		t.Fatalf("unexpected value after reopen: %q ok=%v err=%v", got, ok, err)
	}
}
