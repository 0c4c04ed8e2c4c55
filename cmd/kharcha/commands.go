package main

import (
	"context"
	"fmt"
	"strings"

	"kharcha/internal/core"
	"kharcha/internal/tracker"
)

func listExpenses(ctx context.Context, svc *tracker.Service, window string) error {
	var (
		records []core.Record
		err     error
	)
	switch window {
	case "all":
		records, err = svc.AllExpenses(ctx)
	case "today":
		records, err = svc.TodayExpenses(ctx)
	case "month":
		records, err = svc.MonthlyExpenses(ctx)
	default:
		return fmt.Errorf("unknown window %q: must be all, today or month", window)
	}
	if err != nil {
		return err
	}

	currency, err := svc.Currency(ctx)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No expenses recorded.")
		return nil
	}
	for _, r := range records {
		fmt.Printf("%-14d %s  %-24s [%s] %s%s\n",
			r.ID,
			r.Timestamp.Local().Format("2006-01-02 15:04"),
			r.Description,
			r.Category,
			currency,
			r.Amount.Decimal())
	}
	return nil
}

func listPresets(ctx context.Context, svc *tracker.Service) error {
	buttons, err := svc.QuickButtons(ctx)
	if err != nil {
		return err
	}
	currency, err := svc.Currency(ctx)
	if err != nil {
		return err
	}
	for i, b := range buttons {
		fmt.Printf("%d. %-24s [%s] %s%s\n",
			i+1, b.Description, b.Category, currency, b.Amount.Decimal())
	}
	return nil
}

func parsePreset(description, amount, category string) (core.QuickButton, error) {
	cents, err := core.ParseDecimalToCents(amount)
	if err != nil || cents == 0 {
		return core.QuickButton{}, core.ErrInvalidAmount
	}
	b := core.QuickButton{
		Description: strings.TrimSpace(description),
		Amount:      core.Money{Cents: cents},
		Category:    strings.TrimSpace(category),
	}
	if err := b.Validate(); err != nil {
		return core.QuickButton{}, err
	}
	return b, nil
}
