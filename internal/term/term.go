// Package term holds the terminal implementations of the controller's
// rendering sinks: toast-style notifications and bar charts.
package term

import (
	"fmt"
	"io"
	"strings"

	"kharcha/internal/app"
)

type Notifier struct {
	Out io.Writer
}

func (n Notifier) Notify(message string, severity app.Severity) {
	fmt.Fprintf(n.Out, "[%s] %s\n", severity, message)
}

// Charts renders label/value series as horizontal bar charts. It is a pure
// sink; it returns nothing to the controller.
type Charts struct {
	Out      io.Writer
	Currency string
	barWidth int
}

func NewCharts(out io.Writer, currency string) *Charts {
	return &Charts{Out: out, Currency: currency, barWidth: 40}
}

func (c *Charts) RenderTrend(labels []string, values []float64) {
	c.render("Daily Expenses", labels, values)
}

func (c *Charts) RenderCategories(labels []string, values []float64) {
	c.render("By Category", labels, values)
}

func (c *Charts) render(title string, labels []string, values []float64) {
	if len(labels) == 0 {
		return
	}
	fmt.Fprintf(c.Out, "\n%s\n", title)

	var max float64
	for _, v := range values {
		if v > max {
			max = v
		}
	}

	width := c.barWidth
	if width <= 0 {
		width = 40
	}
	for i, label := range labels {
		fmt.Fprintf(c.Out, "  %-16s %s %s%s\n",
			label, bar(values[i], max, width), c.Currency, formatValue(values[i]))
	}
}

// bar scales a value against the series maximum with rounding, keeping a
// minimal visible bar for small non-zero values.
func bar(value, max float64, width int) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	n := int((value*float64(width) + max/2) / max)
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}
	return strings.Repeat("#", n)
}

func formatValue(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
