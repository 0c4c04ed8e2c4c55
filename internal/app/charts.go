package app

import (
	"sort"

	"kharcha/internal/core"
)

// DailyTotals reduces records to per-day totals, one entry per calendar day
// with spending, sorted ascending (YYYY-MM-DD sorts naturally).
func DailyTotals(records []core.Record) []core.DayTotal {
	daily := make(map[string]core.Money)
	for _, r := range records {
		day := r.Timestamp.Local().Format("2006-01-02")
		daily[day] = daily[day].Add(r.Amount)
	}

	totals := make([]core.DayTotal, 0, len(daily))
	for day, total := range daily {
		totals = append(totals, core.DayTotal{Date: day, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Date < totals[j].Date })
	return totals
}

// TrendSeries splits daily totals into the label/value pair the chart sink
// consumes.
func TrendSeries(records []core.Record) ([]string, []float64) {
	totals := DailyTotals(records)
	labels := make([]string, len(totals))
	values := make([]float64, len(totals))
	for i, dt := range totals {
		labels[i] = dt.Date
		values[i] = float64(dt.Total.Cents) / 100
	}
	return labels, values
}

// CategorySeries turns category totals into parallel label/value slices,
// alphabetical by category so renders are stable.
func CategorySeries(totals map[string]core.Money) ([]string, []float64) {
	labels := make([]string, 0, len(totals))
	for name := range totals {
		labels = append(labels, name)
	}
	sort.Strings(labels)

	values := make([]float64, len(labels))
	for i, name := range labels {
		values[i] = float64(totals[name].Cents) / 100
	}
	return labels, values
}
