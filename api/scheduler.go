/*
scheduler.go - Recurring-expense materializer

PURPOSE:
  Expenses carry a "recurring" flag that the payroll engine deliberately
  ignores: totals only ever count dated expense rows. This scheduler gives
  the flag its evident meaning OUTSIDE the engine - at the start of each
  week it copies every recurring expense into the current week, so the new
  week's totals include it because a real row now exists.

DESIGN:
  - robfig/cron drives the schedule (default: Mondays at 00:05)
  - A recurring expense is copied at most once per week: the copy is skipped
    if the current week already holds an expense with the same category and
    amount
  - Copies are created with Recurring=false so they are plain history rows
    and are never themselves templates

USAGE:
  sched := NewExpenseScheduler(store)
  sched.Start()
  // ... later
  sched.Stop()

SEE ALSO:
  - payroll/types.go: Expense.Recurring contract
  - handlers.go: CreateExpense (flag passes through untouched)
*/
package api

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/warp/shiftsavvy/payroll"
)

// DefaultExpenseCronSpec runs shortly after each week rolls over.
const DefaultExpenseCronSpec = "5 0 * * MON"

// ExpenseScheduler materializes recurring expenses into each new week.
type ExpenseScheduler struct {
	Store    payroll.Store
	CronSpec string

	// now is overridable in tests.
	now func() time.Time

	cron *cron.Cron
}

// NewExpenseScheduler creates a scheduler with the default weekly spec.
func NewExpenseScheduler(store payroll.Store) *ExpenseScheduler {
	return &ExpenseScheduler{
		Store:    store,
		CronSpec: DefaultExpenseCronSpec,
		now:      time.Now,
	}
}

// Start begins the cron loop and runs one materialization immediately, so a
// server restarted mid-week still catches up.
func (es *ExpenseScheduler) Start() error {
	es.cron = cron.New()
	if _, err := es.cron.AddFunc(es.CronSpec, func() {
		if err := es.Materialize(context.Background(), payroll.DateOf(es.now())); err != nil {
			log.Printf("[Scheduler] Recurring expense run failed: %v", err)
		}
	}); err != nil {
		return err
	}
	es.cron.Start()
	log.Printf("[Scheduler] Started with spec %q", es.CronSpec)

	if err := es.Materialize(context.Background(), payroll.DateOf(es.now())); err != nil {
		log.Printf("[Scheduler] Initial recurring expense run failed: %v", err)
	}
	return nil
}

// Stop stops the cron loop and waits for any running job.
func (es *ExpenseScheduler) Stop() {
	if es.cron != nil {
		ctx := es.cron.Stop()
		<-ctx.Done()
		log.Println("[Scheduler] Stopped")
	}
}

// Materialize copies each recurring expense into the week containing today,
// unless that week already holds a matching row.
func (es *ExpenseScheduler) Materialize(ctx context.Context, today payroll.Date) error {
	expenses, err := es.Store.ListExpenses(ctx)
	if err != nil {
		return err
	}

	weekStart := today.WeekStart()

	type match struct {
		category string
		amount   string
	}
	inWeek := make(map[match]bool)
	for _, e := range expenses {
		if e.Date.WeekStart().Equal(weekStart) {
			inWeek[match{e.Category, e.Amount.String()}] = true
		}
	}

	created := 0
	for _, e := range expenses {
		if !e.Recurring {
			continue
		}
		m := match{e.Category, e.Amount.String()}
		if inWeek[m] {
			continue
		}
		_, err := es.Store.CreateExpense(ctx, payroll.Expense{
			Category: e.Category,
			Amount:   e.Amount,
			Date:     weekStart,
		})
		if err != nil {
			return err
		}
		inWeek[m] = true
		created++
	}

	if created > 0 {
		log.Printf("[Scheduler] Materialized %d recurring expense(s) for week of %s", created, weekStart)
	}
	return nil
}
