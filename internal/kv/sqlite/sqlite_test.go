package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "kharcha.db")

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("absent key: got ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "currency", "INR"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, "currency", "USD"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, ok, err := s.Get(ctx, "currency")
	if err != nil || !ok || v != "USD" {
		t.Fatalf("get: got %q ok=%v err=%v", v, ok, err)
	}

	if err := s.Delete(ctx, "currency"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "currency"); ok {
		t.Fatal("key should be gone after delete")
	}
}

func TestStoreDurability(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "kharcha.db")

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := s.Set(ctx, "theme", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Reopen: the value must survive the process boundary.
	s2, err := New(dbPath)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer s2.Close()
	v, ok, err := s2.Get(ctx, "theme")
	if err != nil || !ok || v != "dark" {
		t.Fatalf("after reopen: got %q ok=%v err=%v", v, ok, err)
	}
}
