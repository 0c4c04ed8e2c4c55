package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldKey         = "key"
	FieldBackend     = "backend"
	FieldExpenseID   = "id"
	FieldExpenseDesc = "description"
	FieldAmountCents = "amount_cents"
	FieldCategory    = "category"
	FieldCurrency    = "currency"
	FieldTheme       = "theme"
	FieldBudgetCents = "budget_cents"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldCount       = "count"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentTracker = "tracker"
	ComponentStorage = "storage"
	ComponentBackend = "backend"
	ComponentCLI     = "cli"
)
