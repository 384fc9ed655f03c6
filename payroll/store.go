/*
store.go - Persistence interface for jobs, shifts, expenses, and settings

PURPOSE:
  Defines the boundary between the engine and the database. The store is a
  plain record collaborator: it holds no decision logic, and the engine never
  touches it directly - callers load a snapshot, then hand it to Compute.

IMPLEMENTATIONS:
  - store/sqlite: Production SQLite persistence
  - payroll/store: In-memory implementation for testing/dev

SETTINGS:
  Currency symbol, the show-annual-projection flag, and the week-start display
  preference are presentation concerns. They pass through the store untouched;
  the engine is indifferent to all three and always computes the projection.
*/
package payroll

import "context"

// Store persists the raw records the engine computes over.
type Store interface {
	// Jobs
	CreateJob(ctx context.Context, j Job) (Job, error)
	UpdateJob(ctx context.Context, j Job) error
	DeleteJob(ctx context.Context, id JobID) error
	GetJob(ctx context.Context, id JobID) (*Job, error)
	// ListJobs returns jobs ordered by name. activeOnly filters on the
	// Active flag; the engine itself never does.
	ListJobs(ctx context.Context, activeOnly bool) ([]Job, error)

	// Shifts
	CreateShift(ctx context.Context, s Shift) (Shift, error)
	DeleteShift(ctx context.Context, id ShiftID) error
	// ListShifts returns shifts ordered by date ascending, then ID.
	ListShifts(ctx context.Context) ([]Shift, error)

	// Expenses
	CreateExpense(ctx context.Context, e Expense) (Expense, error)
	DeleteExpense(ctx context.Context, id ExpenseID) error
	// ListExpenses returns expenses ordered by date ascending, then ID.
	ListExpenses(ctx context.Context) ([]Expense, error)

	// Settings
	GetSettings(ctx context.Context) (Settings, error)
	UpdateSettings(ctx context.Context, s Settings) error
}

// Settings are display preferences owned by the presentation layer.
type Settings struct {
	Currency             string
	ShowAnnualProjection bool
	// WeekStartsMonday affects presentation only. Weekly bucketing and the
	// current-week summary always use Monday-start ISO weeks regardless.
	WeekStartsMonday bool
}

// DefaultSettings mirrors the seeded settings row.
func DefaultSettings() Settings {
	return Settings{Currency: "$", ShowAnnualProjection: true, WeekStartsMonday: false}
}
