package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

type (
	Theme string

	// Record is one recorded spending event. ID and Timestamp are assigned
	// by the tracker at insertion and never change afterwards.
	Record struct {
		ID          int64     `json:"id"`
		Amount      Money     `json:"amount"`
		Description string    `json:"description"`
		Category    string    `json:"category"`
		Timestamp   time.Time `json:"timestamp"`
	}

	// QuickButton is a quick-add preset template. Presets are addressed by
	// position; list order is display order.
	QuickButton struct {
		Description string `json:"description"`
		Amount      Money  `json:"amount"`
		Category    string `json:"category"`
	}

	// Snapshot is the export/import payload covering all persisted state.
	Snapshot struct {
		Expenses   []Record  `json:"expenses"`
		Budget     Money     `json:"budget"`
		Currency   string    `json:"currency"`
		Theme      Theme     `json:"theme"`
		ExportDate time.Time `json:"exportDate"`
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyCategory    = errors.New("empty category")
	ErrInvalidTheme     = errors.New("invalid theme")
	ErrInvalidSnapshot  = errors.New("invalid snapshot")
)

// Defaults seeded on first use.
const (
	DefaultCurrency = "INR"
	DefaultTheme    = Light
)

// DefaultQuickButtons returns the presets seeded into an empty store.
// Order matters; it is the display order.
func DefaultQuickButtons() []QuickButton {
	return []QuickButton{
		{Description: "Coffee", Amount: Money{Cents: 2000}, Category: "Food"},
		{Description: "Lunch", Amount: Money{Cents: 10000}, Category: "Food"},
		{Description: "Transport", Amount: Money{Cents: 5000}, Category: "Transport"},
		{Description: "Snacks", Amount: Money{Cents: 3000}, Category: "Food"},
	}
}

func (t Theme) Validate() error {
	switch t {
	case Light, Dark:
		return nil
	}
	return ErrInvalidTheme
}

// Toggle flips light to dark and anything else back to light.
func (t Theme) Toggle() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (r Record) Validate() error {
	if r.Amount.Cents < 0 {
		return ErrInvalidAmount
	}
	if len(strings.TrimSpace(r.Description)) == 0 {
		return ErrEmptyDescription
	}
	if strings.TrimSpace(r.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

func (b QuickButton) Validate() error {
	if b.Amount.Cents <= 0 {
		return ErrInvalidAmount
	}
	if len(strings.TrimSpace(b.Description)) == 0 {
		return ErrEmptyDescription
	}
	if strings.TrimSpace(b.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

func (s Snapshot) Validate() error {
	if s.Budget.Cents < 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(s.Currency) == "" {
		return errors.New("empty currency")
	}
	return s.Theme.Validate()
}
