package tracker

import (
	"context"
	"fmt"
	"log/slog"

	"kharcha/internal/core"
)

// Budget returns the monthly spending ceiling. Zero means no budget set.
func (s *Service) Budget(ctx context.Context) (core.Money, error) {
	raw, ok, err := s.store.Get(ctx, keyBudget)
	if err != nil {
		return core.Money{}, fmt.Errorf("read budget: %w", err)
	}
	if !ok {
		return core.Money{}, nil
	}
	cents, err := core.ParseDecimalToCents(raw)
	if err != nil {
		slog.WarnContext(ctx, "Stored budget unreadable, treating as unset",
			"key", keyBudget, "error", err)
		return core.Money{}, nil
	}
	return core.Money{Cents: cents}, nil
}

// SetBudget persists the budget. Rejecting negative input is the caller's
// responsibility.
func (s *Service) SetBudget(ctx context.Context, amount core.Money) error {
	if err := s.store.Set(ctx, keyBudget, amount.Decimal()); err != nil {
		return fmt.Errorf("write budget: %w", err)
	}
	return nil
}

func (s *Service) Currency(ctx context.Context) (string, error) {
	raw, ok, err := s.store.Get(ctx, keyCurrency)
	if err != nil {
		return "", fmt.Errorf("read currency: %w", err)
	}
	if !ok || raw == "" {
		return core.DefaultCurrency, nil
	}
	return raw, nil
}

func (s *Service) SetCurrency(ctx context.Context, label string) error {
	if err := s.store.Set(ctx, keyCurrency, label); err != nil {
		return fmt.Errorf("write currency: %w", err)
	}
	return nil
}

func (s *Service) Theme(ctx context.Context) (core.Theme, error) {
	raw, ok, err := s.store.Get(ctx, keyTheme)
	if err != nil {
		return "", fmt.Errorf("read theme: %w", err)
	}
	if !ok {
		return core.DefaultTheme, nil
	}
	theme, err := core.ParseTheme(raw)
	if err != nil {
		slog.WarnContext(ctx, "Stored theme unreadable, using default",
			"key", keyTheme, "value", raw)
		return core.DefaultTheme, nil
	}
	return theme, nil
}

func (s *Service) SetTheme(ctx context.Context, theme core.Theme) error {
	if err := s.store.Set(ctx, keyTheme, string(theme)); err != nil {
		return fmt.Errorf("write theme: %w", err)
	}
	return nil
}
