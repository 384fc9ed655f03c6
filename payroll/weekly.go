/*
weekly.go - Weekly overtime reallocation for weekly_40 jobs

PURPOSE:
  For every job whose overtime rule is weekly_40, replaces the provisional
  per-shift earnings with a correct split based on total hours worked by that
  job within each calendar week.

GROUPING:
  Key is (job id, ISO year, ISO week number). Weeks are identified by the ISO
  week calendar; the boundary is always Monday. Any "week starts Monday"
  display preference affects presentation only, never this grouping.

ALLOCATION:
  Shifts are processed in ascending date order, ties broken by shift ID, so
  results are reproducible. A running 40-hour regular budget is consumed
  earliest-first: once it reaches zero, every remaining hour in the week is
  overtime. A worker's last shifts of a busy week absorb the overtime, not
  their first.

ORDERING NOTE:
  The chronological ordering is an explicit, enforced step inside this file,
  not a property inherited from whatever order the caller supplied shifts in.
*/
package payroll

import (
	"sort"

	"github.com/shopspring/decimal"
)

var weeklyBudget = decimal.NewFromInt(40)

// weekKey groups a job's shifts into one calendar week.
type weekKey struct {
	JobID JobID
	Year  int
	Week  int
}

// reallocateWeekly finalizes the per-shift split for weekly_40 jobs.
// Shifts of daily_8 jobs pass through unchanged. The results slice is
// modified in place; indices track the original shift positions.
func reallocateWeekly(jobs map[JobID]Job, shifts []Shift, results []ShiftEarnings) error {
	groups := make(map[weekKey][]int)
	for i, s := range shifts {
		job, ok := jobs[s.JobID]
		if !ok {
			// Referential integrity is checked before computation starts.
			return &ConfigurationError{JobID: s.JobID, Detail: "job missing after referential check"}
		}
		if job.OvertimeRule != OvertimeWeekly40 {
			if job.OvertimeRule != OvertimeDaily8 {
				return &ConfigurationError{JobID: job.ID, Detail: "unknown overtime rule " + string(job.OvertimeRule)}
			}
			continue
		}
		year, week := s.Date.ISOWeek()
		k := weekKey{JobID: s.JobID, Year: year, Week: week}
		groups[k] = append(groups[k], i)
	}

	for k, idxs := range groups {
		job := jobs[k.JobID]
		rate := EffectiveRate(job)

		// Explicit chronological order, tie-broken by shift ID.
		sort.SliceStable(idxs, func(a, b int) bool {
			sa, sb := shifts[idxs[a]], shifts[idxs[b]]
			if !sa.Date.Equal(sb.Date) {
				return sa.Date.Before(sb.Date)
			}
			return sa.ID < sb.ID
		})

		totalHours := decimal.Zero
		for _, i := range idxs {
			totalHours = totalHours.Add(shifts[i].Hours)
		}

		if totalHours.LessThanOrEqual(weeklyBudget) {
			// No overtime: every shift paid straight, regardless of length.
			for _, i := range idxs {
				results[i].RegularHours = shifts[i].Hours
				results[i].OvertimeHours = decimal.Zero
				results[i].Earnings = shifts[i].Hours.Mul(rate)
			}
			continue
		}

		remaining := weeklyBudget
		for _, i := range idxs {
			h := shifts[i].Hours
			regular := decimal.Min(remaining, h)
			overtime := h.Sub(regular)
			remaining = remaining.Sub(regular)

			results[i].RegularHours = regular
			results[i].OvertimeHours = overtime
			results[i].Earnings = regular.Mul(rate).Add(overtime.Mul(rate).Mul(job.Multiplier))
		}
	}
	return nil
}
