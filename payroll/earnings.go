/*
earnings.go - Per-shift earnings under the job's intrinsic overtime rule

PURPOSE:
  Computes a single shift's pay using only that shift's own hours and its
  job's configuration.

KEY INSIGHT:
  Only daily_8 can be decided per shift. A weekly_40 split needs the sibling
  shifts of the same calendar week, so this calculator returns a PROVISIONAL
  all-regular result for weekly_40 jobs. The weekly reallocator (weekly.go)
  always supersedes it; a provisional weekly_40 value must never be surfaced
  as final output.

SEE ALSO:
  - differential.go: The hourly rate add-on
  - weekly.go: Cross-shift weekly_40 reallocation
*/
package payroll

import "github.com/shopspring/decimal"

var eight = decimal.NewFromInt(8)

// shiftEarnings computes one shift's (earnings, regular, overtime) triple.
// Inputs are validated upstream; this is pure arithmetic.
func shiftEarnings(job Job, hours decimal.Decimal) (earnings, regular, overtime decimal.Decimal) {
	rate := EffectiveRate(job)

	if job.OvertimeRule == OvertimeDaily8 {
		regular = decimal.Min(eight, hours)
		overtime = decimal.Max(decimal.Zero, hours.Sub(eight))
		earnings = regular.Mul(rate).Add(overtime.Mul(rate).Mul(job.Multiplier))
		return earnings, regular, overtime
	}

	// weekly_40: provisional, superseded by the weekly reallocator.
	return hours.Mul(rate), hours, decimal.Zero
}
