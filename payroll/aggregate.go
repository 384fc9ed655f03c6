/*
aggregate.go - Week bucketing, current-week summary, annual projection

PURPOSE:
  Turns finalized per-shift earnings and raw expenses into Monday-start
  calendar-week buckets, the current week's scalars, and an extrapolated
  annual net.

STEPS:
  1. Assign each shift and expense to the Monday-start week containing its date.
  2. Sum earnings per week; sum expenses per week. A week with no shifts has
     NO earnings entry (absence, not zero) until the outer-merge.
  3. The current week is the one containing the explicit reference date.
     Missing entries read as zero.
  4. Outer-merge the two series: any week present in either is kept, missing
     sides fill with zero. avg weekly net is the arithmetic mean across these
     active weeks (zero if none); projected annual net = avg * 52.

All missing data degrades gracefully to zero. Pure read-and-summarize.
*/
package payroll

import (
	"sort"

	"github.com/shopspring/decimal"
)

var weeksPerYear = decimal.NewFromInt(52)

// aggregate fills the week buckets and summary scalars of a snapshot.
func aggregate(snap *Snapshot, expenses []Expense) {
	earningsByWeek := make(map[Date]decimal.Decimal)
	for _, se := range snap.Shifts {
		ws := se.Date.WeekStart()
		earningsByWeek[ws] = earningsByWeek[ws].Add(se.Earnings)
	}

	expensesByWeek := make(map[Date]decimal.Decimal)
	for _, e := range expenses {
		ws := e.Date.WeekStart()
		expensesByWeek[ws] = expensesByWeek[ws].Add(e.Amount)
	}

	// Outer-merge on week start.
	seen := make(map[Date]bool)
	var weeks []WeekBucket
	for ws, earned := range earningsByWeek {
		seen[ws] = true
		weeks = append(weeks, WeekBucket{WeekStart: ws, Earnings: earned, Expenses: expensesByWeek[ws]})
	}
	for ws, spent := range expensesByWeek {
		if seen[ws] {
			continue
		}
		weeks = append(weeks, WeekBucket{WeekStart: ws, Earnings: decimal.Zero, Expenses: spent})
	}
	sort.Slice(weeks, func(a, b int) bool { return weeks[a].WeekStart.Before(weeks[b].WeekStart) })
	snap.Weeks = weeks

	// Current-week scalars. Absent weeks read as zero.
	currentWeek := snap.Today.WeekStart()
	snap.EarningsThisWeek = earningsByWeek[currentWeek]
	snap.ExpensesThisWeek = expensesByWeek[currentWeek]
	snap.NetThisWeek = snap.EarningsThisWeek.Sub(snap.ExpensesThisWeek)

	// Annual projection from historical weekly averages.
	if len(weeks) == 0 {
		snap.AvgWeeklyNet = decimal.Zero
		snap.ProjectedAnnualNet = decimal.Zero
		return
	}
	total := decimal.Zero
	for _, w := range weeks {
		total = total.Add(w.Net())
	}
	snap.AvgWeeklyNet = total.Div(decimal.NewFromInt(int64(len(weeks))))
	snap.ProjectedAnnualNet = snap.AvgWeeklyNet.Mul(weeksPerYear)
}

// ChartWindow returns the last n Monday-start weeks ending at the current
// week, zero-filled where no activity was recorded. This is the series the
// dashboard chart plots (n=8 there).
func (s *Snapshot) ChartWindow(n int) []WeekBucket {
	if n <= 0 {
		return nil
	}
	byStart := make(map[Date]WeekBucket, len(s.Weeks))
	for _, w := range s.Weeks {
		byStart[w.WeekStart] = w
	}

	window := make([]WeekBucket, 0, n)
	start := s.Today.WeekStart().AddDays(-7 * (n - 1))
	for i := 0; i < n; i++ {
		ws := start.AddDays(7 * i)
		if w, ok := byStart[ws]; ok {
			window = append(window, w)
			continue
		}
		window = append(window, WeekBucket{WeekStart: ws, Earnings: decimal.Zero, Expenses: decimal.Zero})
	}
	return window
}
