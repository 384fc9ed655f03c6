/*
engine.go - Compute entry point and input validation

PURPOSE:
  Orchestrates one computation pass: validate every record, check referential
  integrity, compute provisional per-shift earnings, reallocate weekly
  overtime, then aggregate into week buckets and summary scalars.

PIPELINE:
  validate -> per-shift earnings (earnings.go) -> weekly reallocation
  (weekly.go) -> aggregation & projection (aggregate.go)

BATCH POLICY:
  The whole batch is rejected on the first invalid record. Financial figures
  computed around a silently skipped record would misstate what the worker
  earned, so nothing proceeds until every record is well formed.

CONCURRENCY:
  Compute is a synchronous, single-threaded, purely functional transformation.
  No I/O, no clock reads, no shared state across invocations. Callers running
  against a live store must hand the engine a consistent snapshot; the engine
  itself needs no locking.
*/
package payroll

import (
	"sort"

	"github.com/shopspring/decimal"
)

var (
	one         = decimal.NewFromInt(1)
	maxShiftHrs = decimal.NewFromInt(24)
)

// Compute derives a payroll snapshot from an immutable data snapshot.
// It is deterministic: identical inputs yield identical output.
func Compute(in Input) (*Snapshot, error) {
	jobs := make(map[JobID]Job, len(in.Jobs))
	for _, j := range in.Jobs {
		if err := ValidateJob(j); err != nil {
			return nil, err
		}
		jobs[j.ID] = j
	}
	for _, s := range in.Shifts {
		if err := ValidateShift(s); err != nil {
			return nil, err
		}
		if _, ok := jobs[s.JobID]; !ok {
			return nil, &ReferentialError{ShiftID: s.ID, JobID: s.JobID, Date: s.Date}
		}
	}
	for _, e := range in.Expenses {
		if err := ValidateExpense(e); err != nil {
			return nil, err
		}
	}

	// Work on a sorted copy so output order never depends on input order.
	shifts := make([]Shift, len(in.Shifts))
	copy(shifts, in.Shifts)
	sort.SliceStable(shifts, func(a, b int) bool {
		if !shifts[a].Date.Equal(shifts[b].Date) {
			return shifts[a].Date.Before(shifts[b].Date)
		}
		return shifts[a].ID < shifts[b].ID
	})

	snap := &Snapshot{Today: in.Today}

	// Provisional per-shift earnings under each job's intrinsic rule.
	results := make([]ShiftEarnings, len(shifts))
	for i, s := range shifts {
		job := jobs[s.JobID]
		earnings, regular, overtime := shiftEarnings(job, s.Hours)
		results[i] = ShiftEarnings{
			ShiftID:       s.ID,
			JobID:         s.JobID,
			Date:          s.Date,
			Hours:         s.Hours,
			Kind:          s.Kind,
			RegularHours:  regular,
			OvertimeHours: overtime,
			Earnings:      earnings,
		}
	}

	// Weekly reallocation supersedes the provisional weekly_40 values.
	if err := reallocateWeekly(jobs, shifts, results); err != nil {
		return nil, err
	}
	snap.Shifts = results

	aggregate(snap, in.Expenses)
	return snap, nil
}

// =============================================================================
// VALIDATION - Reject malformed records before any computation proceeds
// =============================================================================

// ValidateJob checks a job's invariants: positive base rate, multiplier >= 1,
// rule and differential type within their enumerated sets, non-negative
// differential value.
func ValidateJob(j Job) error {
	if !j.BaseRate.IsPositive() {
		return &ValidationError{Record: "job", ID: string(j.ID), Field: "base_rate", Reason: "must be positive"}
	}
	if j.Multiplier.LessThan(one) {
		return &ValidationError{Record: "job", ID: string(j.ID), Field: "ot_multiplier", Reason: "must be >= 1.0"}
	}
	switch j.OvertimeRule {
	case OvertimeWeekly40, OvertimeDaily8:
	default:
		return &ValidationError{Record: "job", ID: string(j.ID), Field: "ot_rule", Reason: "unrecognized value " + string(j.OvertimeRule)}
	}
	switch j.DiffType {
	case DifferentialPercent, DifferentialFixed:
	default:
		return &ValidationError{Record: "job", ID: string(j.ID), Field: "diff_type", Reason: "unrecognized value " + string(j.DiffType)}
	}
	if j.DiffValue.IsNegative() {
		return &ValidationError{Record: "job", ID: string(j.ID), Field: "diff_value", Reason: "must be non-negative"}
	}
	return nil
}

// ValidateShift checks hours in [0, 24] and a non-zero date.
func ValidateShift(s Shift) error {
	if s.Hours.IsNegative() {
		return &ValidationError{Record: "shift", ID: string(s.ID), Field: "hours", Reason: "must be non-negative"}
	}
	if s.Hours.GreaterThan(maxShiftHrs) {
		return &ValidationError{Record: "shift", ID: string(s.ID), Field: "hours", Reason: "exceeds 24 hours"}
	}
	if s.Date.IsZero() {
		return &ValidationError{Record: "shift", ID: string(s.ID), Field: "date", Reason: "is required"}
	}
	return nil
}

// ValidateExpense checks a non-negative amount and a non-zero date.
func ValidateExpense(e Expense) error {
	if e.Amount.IsNegative() {
		return &ValidationError{Record: "expense", ID: string(e.ID), Field: "amount", Reason: "must be non-negative"}
	}
	if e.Date.IsZero() {
		return &ValidationError{Record: "expense", ID: string(e.ID), Field: "date", Reason: "is required"}
	}
	return nil
}
