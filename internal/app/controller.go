// Package app is the application controller: it turns user actions into
// tracker calls and re-renders the dashboard, charts and notifications from
// their return values. The tracker itself trusts this layer to validate
// user input.
package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"kharcha/internal/core"
	"kharcha/internal/tracker"
)

// Severity grades a user notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier is the toast sink: a pure side-effecting collaborator.
type Notifier interface {
	Notify(message string, severity Severity)
}

// ChartRenderer receives label/value series and renders them; it returns
// nothing to the controller.
type ChartRenderer interface {
	RenderTrend(labels []string, values []float64)
	RenderCategories(labels []string, values []float64)
}

// Stats is the dashboard view model derived from the tracker.
type Stats struct {
	Currency    string
	Theme       core.Theme
	Budget      core.Money
	TodayTotal  core.Money
	MonthTotal  core.Money
	Remaining   core.Money
	Today       []core.Record
	TopCategory core.CategoryAmount
}

type Controller struct {
	svc      *tracker.Service
	notifier Notifier
	charts   ChartRenderer
	out      io.Writer
}

func NewController(svc *tracker.Service, notifier Notifier, charts ChartRenderer, out io.Writer) *Controller {
	return &Controller{svc: svc, notifier: notifier, charts: charts, out: out}
}

// AddExpense validates user input, records the expense and refreshes the
// views. Amount must be a positive decimal and description non-empty.
func (c *Controller) AddExpense(ctx context.Context, amount, description, category string) error {
	cents, err := core.ParseDecimalToCents(amount)
	if err != nil || cents == 0 {
		return core.ErrInvalidAmount
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return core.ErrEmptyDescription
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = "Other"
	}

	if _, err := c.svc.AddExpense(ctx, core.Money{Cents: cents}, description, category); err != nil {
		return err
	}
	c.notify("Expense added successfully!", SeveritySuccess)
	return c.Refresh(ctx)
}

// QuickAdd records an expense from the preset at index (zero-based).
func (c *Controller) QuickAdd(ctx context.Context, index int) error {
	buttons, err := c.svc.QuickButtons(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(buttons) {
		return fmt.Errorf("no quick preset %d", index+1)
	}
	b := buttons[index]
	if _, err := c.svc.AddExpense(ctx, b.Amount, b.Description, b.Category); err != nil {
		return err
	}
	c.notify("Expense added successfully!", SeveritySuccess)
	return c.Refresh(ctx)
}

func (c *Controller) RemoveExpense(ctx context.Context, id int64) error {
	if err := c.svc.RemoveExpense(ctx, id); err != nil {
		return err
	}
	c.notify("Expense removed successfully!", SeverityInfo)
	return c.Refresh(ctx)
}

// SetBudget accepts a non-negative decimal; zero clears the budget.
func (c *Controller) SetBudget(ctx context.Context, amount string) error {
	cents, err := core.ParseDecimalToCents(amount)
	if err != nil {
		return core.ErrInvalidAmount
	}
	if err := c.svc.SetBudget(ctx, core.Money{Cents: cents}); err != nil {
		return err
	}
	c.notify("Budget updated successfully!", SeveritySuccess)
	return c.Refresh(ctx)
}

func (c *Controller) SetCurrency(ctx context.Context, label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return fmt.Errorf("empty currency label")
	}
	if err := c.svc.SetCurrency(ctx, label); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// SetTheme switches to the named theme; an empty name toggles light/dark.
func (c *Controller) SetTheme(ctx context.Context, name string) error {
	var theme core.Theme
	if strings.TrimSpace(name) == "" {
		current, err := c.svc.Theme(ctx)
		if err != nil {
			return err
		}
		theme = current.Toggle()
	} else {
		parsed, err := core.ParseTheme(name)
		if err != nil {
			return err
		}
		theme = parsed
	}
	if err := c.svc.SetTheme(ctx, theme); err != nil {
		return err
	}
	c.notify(fmt.Sprintf("Theme set to %s", theme), SeverityInfo)
	return nil
}

func (c *Controller) Export(ctx context.Context) ([]byte, error) {
	return c.svc.Export(ctx)
}

// Import loads a snapshot; a malformed snapshot surfaces as a notification
// and an error, never a crash.
func (c *Controller) Import(ctx context.Context, data []byte) error {
	if err := c.svc.Import(ctx, data); err != nil {
		c.notify("Import failed: invalid data", SeverityError)
		return err
	}
	c.notify("Data imported successfully!", SeveritySuccess)
	return c.Refresh(ctx)
}

func (c *Controller) ClearAll(ctx context.Context) error {
	if err := c.svc.ClearAll(ctx); err != nil {
		return err
	}
	c.notify("All data cleared", SeverityInfo)
	return c.Refresh(ctx)
}

// Stats assembles the dashboard numbers from the tracker.
func (c *Controller) Stats(ctx context.Context) (Stats, error) {
	currency, err := c.svc.Currency(ctx)
	if err != nil {
		return Stats{}, err
	}
	theme, err := c.svc.Theme(ctx)
	if err != nil {
		return Stats{}, err
	}
	budget, err := c.svc.Budget(ctx)
	if err != nil {
		return Stats{}, err
	}
	today, err := c.svc.TodayExpenses(ctx)
	if err != nil {
		return Stats{}, err
	}
	monthly, err := c.svc.MonthlyExpenses(ctx)
	if err != nil {
		return Stats{}, err
	}
	totals, err := c.svc.CategoryTotals(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Currency:    currency,
		Theme:       theme,
		Budget:      budget,
		TodayTotal:  sum(today),
		MonthTotal:  sum(monthly),
		Today:       today,
		TopCategory: topCategory(totals),
	}
	stats.Remaining = RemainingBudget(budget, stats.MonthTotal)
	return stats, nil
}

// topCategory picks the biggest all-time spender, lowest name first on ties
// so renders are stable.
func topCategory(totals map[string]core.Money) core.CategoryAmount {
	var top core.CategoryAmount
	for name, amount := range totals {
		if amount.Cents > top.Amount.Cents ||
			(amount.Cents == top.Amount.Cents && (top.Name == "" || name < top.Name)) {
			top = core.CategoryAmount{Name: name, Amount: amount}
		}
	}
	return top
}

// Refresh re-renders the dashboard and both charts and raises budget alerts.
func (c *Controller) Refresh(ctx context.Context) error {
	stats, err := c.Stats(ctx)
	if err != nil {
		return err
	}
	c.renderDashboard(stats)

	if c.charts != nil {
		monthly, err := c.svc.MonthlyExpenses(ctx)
		if err != nil {
			return err
		}
		labels, values := TrendSeries(monthly)
		c.charts.RenderTrend(labels, values)

		totals, err := c.svc.CategoryTotals(ctx)
		if err != nil {
			return err
		}
		labels, values = CategorySeries(totals)
		c.charts.RenderCategories(labels, values)
	}

	if msg, severity, ok := BudgetAlert(stats.MonthTotal, stats.Budget); ok {
		c.notify(msg, severity)
	}
	return nil
}

// RemainingBudget is max(0, budget - spent); it never goes negative.
func RemainingBudget(budget, spent core.Money) core.Money {
	remaining := budget.Cents - spent.Cents
	if remaining < 0 {
		remaining = 0
	}
	return core.Money{Cents: remaining}
}

// BudgetAlert reports a threshold alert at 75% (notice) and 90% (warning)
// of budget consumed. A zero budget never alerts.
func BudgetAlert(spent, budget core.Money) (string, Severity, bool) {
	if budget.Cents == 0 {
		return "", "", false
	}
	percent := spent.Cents * 100 / budget.Cents
	switch {
	case percent >= 90:
		return "Warning: You have spent 90% of your budget!", SeverityWarning, true
	case percent >= 75:
		return "Notice: You have spent 75% of your budget.", SeverityInfo, true
	}
	return "", "", false
}

func (c *Controller) notify(message string, severity Severity) {
	if c.notifier != nil {
		c.notifier.Notify(message, severity)
	}
}

func sum(records []core.Record) core.Money {
	var total core.Money
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}
