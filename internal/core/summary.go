package core

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount Money
}

// DayTotal is the spending total for a single calendar day.
type DayTotal struct {
	Date  string // YYYY-MM-DD
	Total Money
}
