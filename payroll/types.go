/*
Package payroll converts raw shift and job records into periodized pay figures.

PURPOSE:
  This package is the payroll computation engine. It takes an immutable
  snapshot of jobs, shifts, and expenses, computes per-shift earnings under
  each job's overtime rule, reallocates weekly overtime across shifts,
  buckets everything into Monday-start calendar weeks, and derives a
  current-week summary plus an annualized net projection.

KEY CONCEPTS IN THIS FILE (types.go):
  - Job: A pay configuration (base rate, overtime rule, shift differential)
  - Shift: A worked period referencing a Job
  - Expense: A dated outflow
  - ShiftEarnings: Per-shift pay with regular/overtime hour split
  - WeekBucket: Summed earnings and expenses for one calendar week
  - Snapshot: The full, derived output of one computation

DESIGN PRINCIPLES:
  1. Purity: Compute(jobs, shifts, expenses, today) is a pure function.
     Same inputs always produce identical output.
  2. Precision: Uses decimal.Decimal to avoid floating-point errors in pay.
  3. One-way flow: raw records -> per-shift earnings -> weekly buckets ->
     summary/projection. Nothing is mutated in place.
  4. Explicit time: the reference date is an input, never read from a clock.

USAGE:
  snap, err := payroll.Compute(payroll.Input{
      Jobs:     jobs,
      Shifts:   shifts,
      Expenses: expenses,
      Today:    payroll.NewDate(2026, time.March, 4),
  })

SEE ALSO:
  - earnings.go: Per-shift calculation (differential + intrinsic overtime)
  - weekly.go: Cross-shift weekly overtime reallocation
  - aggregate.go: Week bucketing, current-week summary, annual projection
  - engine.go: Compute entry point and input validation
*/
package payroll

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

type JobID string
type ShiftID string
type ExpenseID string

// =============================================================================
// OVERTIME RULES AND SHIFT DIFFERENTIALS
// =============================================================================

// OvertimeRule determines which hours of a shift are paid at a premium.
type OvertimeRule string

const (
	// OvertimeWeekly40: hours beyond 40 in a calendar week are overtime,
	// regardless of how they are distributed across shifts.
	OvertimeWeekly40 OvertimeRule = "weekly_40"

	// OvertimeDaily8: hours beyond 8 in a single shift are overtime.
	OvertimeDaily8 OvertimeRule = "daily_8"
)

// DifferentialType determines how a job's shift differential is expressed.
type DifferentialType string

const (
	// DifferentialPercent: percentage points of the base rate.
	DifferentialPercent DifferentialType = "percent"

	// DifferentialFixed: flat hourly add-on, independent of the base rate.
	DifferentialFixed DifferentialType = "fixed"
)

// =============================================================================
// INPUT RECORDS
// =============================================================================

// Job is a pay configuration. Jobs are not versioned: editing a job's rate
// retroactively changes the computed pay of all its historical shifts.
type Job struct {
	ID           JobID
	Name         string
	BaseRate     decimal.Decimal // positive, per hour
	OvertimeRule OvertimeRule
	Multiplier   decimal.Decimal // >= 1.0, applied to the differential-adjusted rate
	DiffType     DifferentialType
	DiffValue    decimal.Decimal // non-negative; percent points or flat add-on
	Active       bool
}

// Shift is a worked period. Kind is a free-form label (Day, Night, ...) and
// never participates in pay math.
type Shift struct {
	ID    ShiftID
	JobID JobID
	Date  Date
	Hours decimal.Decimal // non-negative, practically <= 24
	Kind  string
}

// Expense is a dated outflow. Recurring is informational only: it does not
// affect any engine total. The surrounding application may use it to
// materialize future expense rows.
type Expense struct {
	ID        ExpenseID
	Category  string
	Amount    decimal.Decimal // non-negative
	Date      Date
	Recurring bool
}

// =============================================================================
// DERIVED OUTPUT
// =============================================================================

// ShiftEarnings is the finalized pay for a single shift.
type ShiftEarnings struct {
	ShiftID       ShiftID
	JobID         JobID
	Date          Date
	Hours         decimal.Decimal
	Kind          string
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	Earnings      decimal.Decimal
}

// WeekBucket holds summed earnings and expenses for one Monday-start week.
// Buckets are produced fresh on every computation and never mutated after.
type WeekBucket struct {
	WeekStart Date
	Earnings  decimal.Decimal
	Expenses  decimal.Decimal
}

// Net returns earnings minus expenses for the week.
func (w WeekBucket) Net() decimal.Decimal {
	return w.Earnings.Sub(w.Expenses)
}

// Snapshot is the full output of one computation. It is a pure function of
// (jobs, shifts, expenses, reference date): recomputing with the same inputs
// yields identical output.
type Snapshot struct {
	Today Date

	// Per-shift results in chronological order (date, then shift ID).
	Shifts []ShiftEarnings

	// Every week that had any activity at all, ascending by week start.
	Weeks []WeekBucket

	// Current-week scalars for the week containing Today.
	EarningsThisWeek decimal.Decimal
	ExpensesThisWeek decimal.Decimal
	NetThisWeek      decimal.Decimal

	// Mean weekly net across active weeks, and that mean extrapolated to a year.
	AvgWeeklyNet       decimal.Decimal
	ProjectedAnnualNet decimal.Decimal
}

// Input is the immutable data snapshot one computation runs over. Callers
// filter Jobs to active ones if inactive jobs should be excluded; the engine
// does not consult the Active flag.
type Input struct {
	Jobs     []Job
	Shifts   []Shift
	Expenses []Expense
	Today    Date
}
