package app

import (
	"fmt"

	"kharcha/internal/core"
)

// renderDashboard writes the stats block and today's expense list.
func (c *Controller) renderDashboard(stats Stats) {
	if c.out == nil {
		return
	}
	fmt.Fprintf(c.out, "Monthly Budget:   %s\n", formatAmount(stats.Currency, stats.Budget))
	fmt.Fprintf(c.out, "Today's Spending: %s\n", formatAmount(stats.Currency, stats.TodayTotal))
	fmt.Fprintf(c.out, "Monthly Spending: %s\n", formatAmount(stats.Currency, stats.MonthTotal))
	fmt.Fprintf(c.out, "Remaining Budget: %s\n", formatAmount(stats.Currency, stats.Remaining))
	if stats.TopCategory.Name != "" {
		fmt.Fprintf(c.out, "Top Category:     %s (%s)\n",
			stats.TopCategory.Name, formatAmount(stats.Currency, stats.TopCategory.Amount))
	}

	if len(stats.Today) == 0 {
		fmt.Fprintln(c.out, "\nNo expenses recorded today.")
		return
	}
	fmt.Fprintln(c.out, "\nToday:")
	for _, r := range stats.Today {
		fmt.Fprintf(c.out, "  %-12d %-24s [%s] %s\n",
			r.ID, r.Description, r.Category, formatAmount(stats.Currency, r.Amount))
	}
}

func formatAmount(currency string, m core.Money) string {
	return currency + m.Decimal()
}
