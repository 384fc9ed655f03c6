/*
errors.go - Centralized error types for the payroll engine

PURPOSE:
  All engine error types in one place for consistency and discoverability.
  Every error carries enough context (job id, shift id, date) to let the
  caller fix the offending record.

ERROR CATEGORIES:
  1. Validation errors - malformed input records (client data problem)
  2. Referential errors - a shift references a missing job (client data problem)
  3. Configuration errors - internal invariant violated (programming error)

BATCH POLICY:
  Compute rejects the whole batch on the first invalid record. A single bad
  record must not silently distort the payroll of valid ones, and partial
  results are worse than no results for financial figures.

USAGE:
  if errors.Is(err, payroll.ErrValidation) {
      // reject the record at entry
  }
*/
package payroll

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrValidation is the base for malformed-input errors: negative hours,
	// non-positive base rate, multiplier < 1, unknown rule or differential type.
	ErrValidation = errors.New("invalid record")

	// ErrReferential is returned when a shift references a job identifier
	// absent from the supplied job collection. Never silently dropped:
	// dropping would under-report hours worked.
	ErrReferential = errors.New("dangling job reference")

	// ErrConfiguration marks an internal invariant violation, e.g. an
	// overtime rule outside the known enumerants reaching the reallocator.
	// Unreachable given validated input; a programming error if seen.
	ErrConfiguration = errors.New("engine configuration invariant violated")

	// ErrNotFound is returned by Store implementations when a referenced
	// record does not exist.
	ErrNotFound = errors.New("record not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry record context
// =============================================================================

// ValidationError reports a malformed input record.
type ValidationError struct {
	Record string // "job", "shift", "expense"
	ID     string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s %s", e.Record, e.ID, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ReferentialError reports a shift whose job is not in the supplied snapshot.
type ReferentialError struct {
	ShiftID ShiftID
	JobID   JobID
	Date    Date
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("shift %q on %s references unknown job %q", e.ShiftID, e.Date, e.JobID)
}

func (e *ReferentialError) Unwrap() error { return ErrReferential }

// ConfigurationError reports an internal invariant violation.
type ConfigurationError struct {
	JobID  JobID
	Detail string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration invariant violated for job %q: %s", e.JobID, e.Detail)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to bad client-supplied data
// rather than an engine bug.
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrReferential)
}
