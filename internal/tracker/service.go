// Package tracker implements the aggregation and record service: CRUD over
// expense records, date-windowed queries, category totals, settings,
// export/import and quick-add presets, all persisted through a kv.Store.
package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"kharcha/internal/core"
	"kharcha/internal/kv"
)

// Storage keys. The layout is textual: composite values are JSON encoded,
// scalars are plain text.
const (
	keyExpenses     = "expenses"
	keyBudget       = "monthlyBudget"
	keyCurrency     = "currency"
	keyTheme        = "theme"
	keyQuickButtons = "quickButtons"
)

// Clock supplies "now" to timestamp assignment and windowing queries, so
// tests can pin the wall clock.
type Clock func() time.Time

// Service holds no cached state; every read and write goes to the store
// synchronously. There is exactly one logical writer.
type Service struct {
	store kv.Store
	now   Clock
}

func New(store kv.Store) *Service {
	return NewWithClock(store, time.Now)
}

func NewWithClock(store kv.Store, clock Clock) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{store: store, now: clock}
}

// Seed writes the documented default for every key that is still absent.
// Call once at startup; calling again is harmless.
func (s *Service) Seed(ctx context.Context) error {
	defaults := []struct {
		key   string
		value func() (string, error)
	}{
		{keyExpenses, func() (string, error) { return marshalJSON([]core.Record{}) }},
		{keyBudget, func() (string, error) { return core.Money{}.Decimal(), nil }},
		{keyCurrency, func() (string, error) { return core.DefaultCurrency, nil }},
		{keyTheme, func() (string, error) { return string(core.DefaultTheme), nil }},
		{keyQuickButtons, func() (string, error) { return marshalJSON(core.DefaultQuickButtons()) }},
	}

	for _, d := range defaults {
		_, ok, err := s.store.Get(ctx, d.key)
		if err != nil {
			return fmt.Errorf("seed %s: %w", d.key, err)
		}
		if ok {
			continue
		}
		value, err := d.value()
		if err != nil {
			return fmt.Errorf("seed %s: %w", d.key, err)
		}
		if err := s.store.Set(ctx, d.key, value); err != nil {
			return fmt.Errorf("seed %s: %w", d.key, err)
		}
		slog.DebugContext(ctx, "Seeded default", "key", d.key)
	}
	return nil
}

// AddExpense assigns an ID and timestamp, appends the record and persists
// the whole list. Amount validation is the caller's responsibility.
func (s *Service) AddExpense(ctx context.Context, amount core.Money, description, category string) (core.Record, error) {
	records, err := s.readExpenses(ctx)
	if err != nil {
		return core.Record{}, err
	}

	now := s.now()
	rec := core.Record{
		ID:          nextID(records, now),
		Amount:      amount,
		Description: description,
		Category:    category,
		Timestamp:   now,
	}
	records = append(records, rec)

	if err := s.writeExpenses(ctx, records); err != nil {
		return core.Record{}, err
	}

	slog.InfoContext(ctx, "Expense recorded",
		"id", rec.ID,
		"description", rec.Description,
		"amount_cents", rec.Amount.Cents,
		"category", rec.Category)
	return rec, nil
}

// RemoveExpense removes the record with the given id. An unknown id is a
// silent no-op, not an error.
func (s *Service) RemoveExpense(ctx context.Context, id int64) error {
	records, err := s.readExpenses(ctx)
	if err != nil {
		return err
	}

	filtered := records[:0:0]
	for _, r := range records {
		if r.ID != id {
			filtered = append(filtered, r)
		}
	}

	if err := s.writeExpenses(ctx, filtered); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Expense removed",
		"id", id,
		"matched", len(filtered) != len(records))
	return nil
}

// AllExpenses returns the full history in insertion order.
func (s *Service) AllExpenses(ctx context.Context) ([]core.Record, error) {
	return s.readExpenses(ctx)
}

// TodayExpenses returns records whose local calendar date equals today's.
// Time of day is ignored.
func (s *Service) TodayExpenses(ctx context.Context) ([]core.Record, error) {
	records, err := s.readExpenses(ctx)
	if err != nil {
		return nil, err
	}
	y, m, d := s.now().Date()
	var out []core.Record
	for _, r := range records {
		ry, rm, rd := r.Timestamp.Local().Date()
		if ry == y && rm == m && rd == d {
			out = append(out, r)
		}
	}
	return out, nil
}

// MonthlyExpenses returns records from the current local calendar month.
func (s *Service) MonthlyExpenses(ctx context.Context) ([]core.Record, error) {
	records, err := s.readExpenses(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	var out []core.Record
	for _, r := range records {
		ts := r.Timestamp.Local()
		if ts.Year() == now.Year() && ts.Month() == now.Month() {
			out = append(out, r)
		}
	}
	return out, nil
}

// CategoryTotals sums amounts over the entire history grouped by category.
// The window is deliberately all-time, not the current month.
func (s *Service) CategoryTotals(ctx context.Context) (map[string]core.Money, error) {
	records, err := s.readExpenses(ctx)
	if err != nil {
		return nil, err
	}
	totals := make(map[string]core.Money)
	for _, r := range records {
		totals[r.Category] = totals[r.Category].Add(r.Amount)
	}
	return totals, nil
}

// nextID derives a creation-time id, bumping past any existing ids so the
// uniqueness invariant holds even under a pinned clock.
func nextID(records []core.Record, now time.Time) int64 {
	id := now.UnixMilli()
	for taken(records, id) {
		id++
	}
	return id
}

func taken(records []core.Record, id int64) bool {
	for _, r := range records {
		if r.ID == id {
			return true
		}
	}
	return false
}

func (s *Service) readExpenses(ctx context.Context) ([]core.Record, error) {
	raw, ok, err := s.store.Get(ctx, keyExpenses)
	if err != nil {
		return nil, fmt.Errorf("read expenses: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var records []core.Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		// Value lost; behave as if absent rather than failing hard.
		slog.WarnContext(ctx, "Stored expense list unreadable, treating as empty",
			"key", keyExpenses, "error", err)
		return nil, nil
	}
	return records, nil
}

func (s *Service) writeExpenses(ctx context.Context, records []core.Record) error {
	if records == nil {
		records = []core.Record{}
	}
	value, err := marshalJSON(records)
	if err != nil {
		return fmt.Errorf("encode expenses: %w", err)
	}
	if err := s.store.Set(ctx, keyExpenses, value); err != nil {
		return fmt.Errorf("write expenses: %w", err)
	}
	return nil
}

func marshalJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
