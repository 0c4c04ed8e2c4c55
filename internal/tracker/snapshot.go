package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"kharcha/internal/core"
)

// Export serializes the full persisted state as a snapshot.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	records, err := s.readExpenses(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []core.Record{}
	}
	budget, err := s.Budget(ctx)
	if err != nil {
		return nil, err
	}
	currency, err := s.Currency(ctx)
	if err != nil {
		return nil, err
	}
	theme, err := s.Theme(ctx)
	if err != nil {
		return nil, err
	}

	snap := core.Snapshot{
		Expenses:   records,
		Budget:     budget,
		Currency:   currency,
		Theme:      theme,
		ExportDate: s.now(),
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	slog.InfoContext(ctx, "Data exported", "expenses", len(records))
	return data, nil
}

// Import replaces all persisted fields from a snapshot. The input is parsed
// and validated in full before the first write, so malformed data never
// leaves partial state behind. Any failure is reported as an error, never a
// panic.
func (s *Service) Import(ctx context.Context, data []byte) error {
	var raw struct {
		Expenses *[]core.Record `json:"expenses"`
		Budget   *core.Money    `json:"budget"`
		Currency *string        `json:"currency"`
		Theme    *core.Theme    `json:"theme"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", core.ErrInvalidSnapshot, err)
	}
	if raw.Expenses == nil || raw.Budget == nil || raw.Currency == nil || raw.Theme == nil {
		return fmt.Errorf("%w: missing required field", core.ErrInvalidSnapshot)
	}

	snap := core.Snapshot{
		Expenses: *raw.Expenses,
		Budget:   *raw.Budget,
		Currency: *raw.Currency,
		Theme:    *raw.Theme,
	}
	if err := snap.Validate(); err != nil {
		return fmt.Errorf("%w: %v", core.ErrInvalidSnapshot, err)
	}

	// Four sequential single-key writes; validated input makes a partial
	// failure only possible on a broken store.
	if err := s.writeExpenses(ctx, snap.Expenses); err != nil {
		return err
	}
	if err := s.SetBudget(ctx, snap.Budget); err != nil {
		return err
	}
	if err := s.SetCurrency(ctx, snap.Currency); err != nil {
		return err
	}
	if err := s.SetTheme(ctx, snap.Theme); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Data imported", "expenses", len(snap.Expenses))
	return nil
}

// ClearAll erases every persisted key and re-seeds first-run defaults.
func (s *Service) ClearAll(ctx context.Context) error {
	keys := []string{keyExpenses, keyBudget, keyCurrency, keyTheme, keyQuickButtons}
	for _, key := range keys {
		if err := s.store.Delete(ctx, key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
	}
	if err := s.Seed(ctx); err != nil {
		return err
	}
	slog.InfoContext(ctx, "All data cleared")
	return nil
}
