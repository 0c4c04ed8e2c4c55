package tracker

import (
	"context"
	"testing"
	"time"

	"kharcha/internal/core"
	"kharcha/internal/kv/memory"
)

// testService returns a service over a fresh in-memory store with a pinned,
// reassignable clock.
func testService(t *testing.T, start time.Time) (*Service, *memory.Store, *time.Time) {
	t.Helper()
	now := start
	store := memory.New()
	svc := NewWithClock(store, func() time.Time { return now })
	return svc, store, &now
}

func TestAddExpenseRoundTrip(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 3, 15, 10, 30, 0, 0, time.Local)
	svc, _, _ := testService(t, start)

	before, err := svc.AllExpenses(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	rec, err := svc.AddExpense(ctx, core.Money{Cents: 2000}, "Coffee", "Food")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !rec.Timestamp.Equal(start) {
		t.Errorf("timestamp = %v, want %v", rec.Timestamp, start)
	}

	after, err := svc.AllExpenses(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(after) != len(before)+1 {
		t.Fatalf("expected %d records, got %d", len(before)+1, len(after))
	}
	got := after[len(after)-1]
	if got.Amount.Cents != 2000 || got.Description != "Coffee" || got.Category != "Food" {
		t.Errorf("stored record mismatch: %+v", got)
	}
	if got.ID != rec.ID {
		t.Errorf("returned id %d differs from stored %d", rec.ID, got.ID)
	}
}

func TestAddExpenseUniqueIDsUnderPinnedClock(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := testService(t, time.Date(2025, 3, 15, 10, 0, 0, 0, time.Local))

	a, err := svc.AddExpense(ctx, core.Money{Cents: 100}, "one", "Misc")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	b, err := svc.AddExpense(ctx, core.Money{Cents: 100}, "two", "Misc")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if a.ID == b.ID {
		t.Fatalf("ids must be unique, both %d", a.ID)
	}
}

func TestRemoveExpenseIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := testService(t, time.Date(2025, 3, 15, 10, 0, 0, 0, time.Local))

	rec, err := svc.AddExpense(ctx, core.Money{Cents: 500}, "Lunch", "Food")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	keep, err := svc.AddExpense(ctx, core.Money{Cents: 300}, "Snacks", "Food")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := svc.RemoveExpense(ctx, rec.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	// Second removal of the same id is a silent no-op.
	if err := svc.RemoveExpense(ctx, rec.ID); err != nil {
		t.Fatalf("remove twice: %v", err)
	}
	// Removing an unknown id leaves the list unchanged.
	if err := svc.RemoveExpense(ctx, 424242); err != nil {
		t.Fatalf("remove unknown: %v", err)
	}

	records, err := svc.AllExpenses(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 || records[0].ID != keep.ID {
		t.Fatalf("expected only %d to remain, got %+v", keep.ID, records)
	}
}

func TestDateWindowing(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)
	svc, _, now := testService(t, today)

	*now = today.AddDate(0, 0, -1) // yesterday
	if _, err := svc.AddExpense(ctx, core.Money{Cents: 100}, "yesterday", "Misc"); err != nil {
		t.Fatalf("add: %v", err)
	}
	*now = today
	todayRec, err := svc.AddExpense(ctx, core.Money{Cents: 200}, "today", "Misc")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	*now = today.AddDate(0, 1, 0) // next month
	if _, err := svc.AddExpense(ctx, core.Money{Cents: 300}, "next month", "Misc"); err != nil {
		t.Fatalf("add: %v", err)
	}

	*now = today
	gotToday, err := svc.TodayExpenses(ctx)
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if len(gotToday) != 1 || gotToday[0].ID != todayRec.ID {
		t.Fatalf("today window = %+v, want only %d", gotToday, todayRec.ID)
	}

	gotMonth, err := svc.MonthlyExpenses(ctx)
	if err != nil {
		t.Fatalf("month: %v", err)
	}
	if len(gotMonth) != 2 {
		t.Fatalf("month window = %d records, want 2", len(gotMonth))
	}
	for _, r := range gotMonth {
		if r.Description == "next month" {
			t.Fatal("next month's record leaked into the current month window")
		}
	}
}

func TestDateWindowingMonthBoundary(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local)
	svc, _, now := testService(t, today)

	*now = today.AddDate(0, 0, -1) // Feb 28
	if _, err := svc.AddExpense(ctx, core.Money{Cents: 100}, "yesterday", "Misc"); err != nil {
		t.Fatalf("add: %v", err)
	}
	*now = today
	if _, err := svc.AddExpense(ctx, core.Money{Cents: 200}, "today", "Misc"); err != nil {
		t.Fatalf("add: %v", err)
	}

	gotMonth, err := svc.MonthlyExpenses(ctx)
	if err != nil {
		t.Fatalf("month: %v", err)
	}
	if len(gotMonth) != 1 || gotMonth[0].Description != "today" {
		t.Fatalf("month window across boundary = %+v, want only today's", gotMonth)
	}
}

func TestCategoryTotals(t *testing.T) {
	ctx := context.Background()
	svc, _, now := testService(t, time.Date(2025, 3, 15, 10, 0, 0, 0, time.Local))

	add := func(cents int64, category string) {
		t.Helper()
		if _, err := svc.AddExpense(ctx, core.Money{Cents: cents}, "x", category); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	add(2000, "Food")
	add(3000, "Food")
	// Totals are all-time, so a record from a past month still counts.
	*now = now.AddDate(0, -2, 0)
	add(5000, "Transport")

	totals, err := svc.CategoryTotals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("expected 2 categories, got %v", totals)
	}
	if totals["Food"].Cents != 5000 {
		t.Errorf("Food = %d, want 5000", totals["Food"].Cents)
	}
	if totals["Transport"].Cents != 5000 {
		t.Errorf("Transport = %d, want 5000", totals["Transport"].Cents)
	}
}

func TestSeedDefaults(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := testService(t, time.Date(2025, 3, 15, 10, 0, 0, 0, time.Local))

	if err := svc.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if store.Len() != 5 {
		t.Fatalf("expected 5 seeded keys, got %d", store.Len())
	}

	budget, err := svc.Budget(ctx)
	if err != nil || budget.Cents != 0 {
		t.Errorf("budget = %v, %v; want 0", budget, err)
	}
	currency, err := svc.Currency(ctx)
	if err != nil || currency != "INR" {
		t.Errorf("currency = %q, %v; want INR", currency, err)
	}
	theme, err := svc.Theme(ctx)
	if err != nil || theme != core.Light {
		t.Errorf("theme = %q, %v; want light", theme, err)
	}
	records, err := svc.AllExpenses(ctx)
	if err != nil || len(records) != 0 {
		t.Errorf("expenses = %v, %v; want empty", records, err)
	}
	buttons, err := svc.QuickButtons(ctx)
	if err != nil {
		t.Fatalf("quick buttons: %v", err)
	}
	want := core.DefaultQuickButtons()
	if len(buttons) != len(want) {
		t.Fatalf("expected %d presets, got %d", len(want), len(buttons))
	}
	for i := range want {
		if buttons[i] != want[i] {
			t.Errorf("preset %d = %+v, want %+v", i, buttons[i], want[i])
		}
	}

	// Seeding twice must not overwrite existing values.
	if err := svc.SetCurrency(ctx, "USD"); err != nil {
		t.Fatalf("set currency: %v", err)
	}
	if err := svc.Seed(ctx); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	if currency, _ := svc.Currency(ctx); currency != "USD" {
		t.Errorf("reseed clobbered currency: %q", currency)
	}
}

func TestUnreadableValuesBehaveAsAbsent(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := testService(t, time.Date(2025, 3, 15, 10, 0, 0, 0, time.Local))

	if err := store.Set(ctx, "expenses", "not json"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "monthlyBudget", "lots"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "theme", "blue"); err != nil {
		t.Fatalf("set: %v", err)
	}

	if records, err := svc.AllExpenses(ctx); err != nil || len(records) != 0 {
		t.Errorf("expenses = %v, %v; want empty, nil", records, err)
	}
	if budget, err := svc.Budget(ctx); err != nil || budget.Cents != 0 {
		t.Errorf("budget = %v, %v; want 0, nil", budget, err)
	}
	if theme, err := svc.Theme(ctx); err != nil || theme != core.Light {
		t.Errorf("theme = %v, %v; want light, nil", theme, err)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := testService(t, time.Date(2025, 3, 15, 10, 0, 0, 0, time.Local))

	if err := svc.SetBudget(ctx, core.Money{Cents: 100000}); err != nil {
		t.Fatalf("set budget: %v", err)
	}
	if budget, _ := svc.Budget(ctx); budget.Cents != 100000 {
		t.Errorf("budget = %d, want 100000", budget.Cents)
	}

	if err := svc.SetCurrency(ctx, "EUR"); err != nil {
		t.Fatalf("set currency: %v", err)
	}
	if currency, _ := svc.Currency(ctx); currency != "EUR" {
		t.Errorf("currency = %q, want EUR", currency)
	}

	if err := svc.SetTheme(ctx, core.Dark); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if theme, _ := svc.Theme(ctx); theme != core.Dark {
		t.Errorf("theme = %q, want dark", theme)
	}
}
