package payroll

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Differential converts a job's shift-differential rule into an hourly add-on.
//
// percent: baseRate * value / 100.
// fixed:   value, unchanged regardless of base rate. It is an hourly add-on,
//          not a one-time amount: it joins the rate and is multiplied by every
//          hour worked, including overtime hours before the multiplier applies.
//
// Value is assumed already validated non-negative. An unknown type yields zero;
// validation rejects it long before this point.
func Differential(baseRate decimal.Decimal, diffType DifferentialType, value decimal.Decimal) decimal.Decimal {
	switch diffType {
	case DifferentialPercent:
		return baseRate.Mul(value).Div(hundred)
	case DifferentialFixed:
		return value
	default:
		return decimal.Zero
	}
}

// EffectiveRate is the differential-adjusted hourly rate for a job.
func EffectiveRate(job Job) decimal.Decimal {
	return job.BaseRate.Add(Differential(job.BaseRate, job.DiffType, job.DiffValue))
}
