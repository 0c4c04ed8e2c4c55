package memory

import (
	"context"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("absent key: got ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "theme", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := s.Get(ctx, "theme")
	if err != nil || !ok || v != "dark" {
		t.Fatalf("get: got %q ok=%v err=%v", v, ok, err)
	}

	// Overwrite
	if err := s.Set(ctx, "theme", "light"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if v, _, _ := s.Get(ctx, "theme"); v != "light" {
		t.Fatalf("after overwrite: got %q", v)
	}

	if err := s.Delete(ctx, "theme"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "theme"); ok {
		t.Fatal("key should be gone after delete")
	}

	// Deleting an absent key is not an error
	if err := s.Delete(ctx, "theme"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}
