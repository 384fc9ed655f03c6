package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/shiftsavvy/payroll"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := New(":memory:")
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestJobRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	job := payroll.Job{
		Name:         "RN - Staff",
		BaseRate:     decimal.RequireFromString("38.75"),
		OvertimeRule: payroll.OvertimeWeekly40,
		Multiplier:   decimal.RequireFromString("1.5"),
		DiffType:     payroll.DifferentialPercent,
		DiffValue:    decimal.RequireFromString("10"),
		Active:       true,
	}
	created, err := st.CreateJob(ctx, job)
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated job ID")
	}

	got, err := st.GetJob(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetJob: %v", err)
	}
	if got == nil {
		t.Fatal("job not found after create")
	}
	// Decimal columns are TEXT, so values round-trip exactly.
	if !got.BaseRate.Equal(job.BaseRate) || !got.Multiplier.Equal(job.Multiplier) || !got.DiffValue.Equal(job.DiffValue) {
		t.Errorf("decimals did not round-trip: %+v", got)
	}
	if got.OvertimeRule != payroll.OvertimeWeekly40 || got.DiffType != payroll.DifferentialPercent {
		t.Errorf("enums did not round-trip: %+v", got)
	}
}

func TestGetJob_Missing(t *testing.T) {
	st := newTestStore(t)
	got, err := st.GetJob(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetJob: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing job, got %+v", got)
	}
}

func TestUpdateAndDeleteJob(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	created, err := st.CreateJob(ctx, payroll.Job{
		Name:         "RN - PRN",
		BaseRate:     decimal.NewFromInt(55),
		OvertimeRule: payroll.OvertimeDaily8,
		Multiplier:   decimal.RequireFromString("1.5"),
		DiffType:     payroll.DifferentialFixed,
		DiffValue:    decimal.NewFromInt(2),
		Active:       true,
	})
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}

	created.Active = false
	if err := st.UpdateJob(ctx, created); err != nil {
		t.Fatalf("UpdateJob: %v", err)
	}
	got, _ := st.GetJob(ctx, created.ID)
	if got.Active {
		t.Error("update not applied")
	}

	if err := st.UpdateJob(ctx, payroll.Job{ID: "nope", BaseRate: decimal.NewFromInt(1), Multiplier: decimal.NewFromInt(1)}); !errors.Is(err, payroll.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := st.DeleteJob(ctx, created.ID); err != nil {
		t.Fatalf("DeleteJob: %v", err)
	}
	if err := st.DeleteJob(ctx, created.ID); !errors.Is(err, payroll.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestDeleteJob_CascadesShifts(t *testing.T) {
	// GIVEN: A job with two shifts
	// WHEN: The job is deleted
	// THEN: Its shifts are gone (foreign key ON DELETE CASCADE)

	ctx := context.Background()
	st := newTestStore(t)

	job, err := st.CreateJob(ctx, payroll.Job{
		Name:         "RN - Staff",
		BaseRate:     decimal.NewFromInt(38),
		OvertimeRule: payroll.OvertimeWeekly40,
		Multiplier:   decimal.RequireFromString("1.5"),
		DiffType:     payroll.DifferentialPercent,
		DiffValue:    decimal.Zero,
		Active:       true,
	})
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}

	day := payroll.NewDate(2026, time.March, 3)
	for i := 0; i < 2; i++ {
		if _, err := st.CreateShift(ctx, payroll.Shift{
			JobID: job.ID, Date: day.AddDays(i), Hours: decimal.NewFromInt(8), Kind: "Day",
		}); err != nil {
			t.Fatalf("CreateShift: %v", err)
		}
	}

	if err := st.DeleteJob(ctx, job.ID); err != nil {
		t.Fatalf("DeleteJob: %v", err)
	}
	shifts, err := st.ListShifts(ctx)
	if err != nil {
		t.Fatalf("ListShifts: %v", err)
	}
	if len(shifts) != 0 {
		t.Errorf("expected 0 shifts after cascade, got %d", len(shifts))
	}
}

func TestExpenseRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	created, err := st.CreateExpense(ctx, payroll.Expense{
		Category:  "Rent",
		Amount:    decimal.RequireFromString("1500.00"),
		Date:      payroll.NewDate(2026, time.March, 1),
		Recurring: true,
	})
	if err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}

	expenses, err := st.ListExpenses(ctx)
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}
	if len(expenses) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(expenses))
	}
	e := expenses[0]
	if e.ID != created.ID || e.Category != "Rent" || !e.Recurring {
		t.Errorf("expense did not round-trip: %+v", e)
	}
	if !e.Amount.Equal(decimal.RequireFromString("1500.00")) {
		t.Errorf("amount did not round-trip: %s", e.Amount)
	}
}

func TestSettings_DefaultsAndUpdate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	s, err := st.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if s != payroll.DefaultSettings() {
		t.Errorf("expected seeded defaults, got %+v", s)
	}

	s.Currency = "£"
	s.WeekStartsMonday = true
	if err := st.UpdateSettings(ctx, s); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	got, err := st.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if got != s {
		t.Errorf("settings not persisted: %+v", got)
	}
}

func TestSeedDemo_Idempotent(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	today := payroll.NewDate(2026, time.March, 4)

	if err := st.SeedDemo(ctx, today); err != nil {
		t.Fatalf("SeedDemo: %v", err)
	}
	if err := st.SeedDemo(ctx, today); err != nil {
		t.Fatalf("second SeedDemo: %v", err)
	}

	jobs, _ := st.ListJobs(ctx, false)
	shifts, _ := st.ListShifts(ctx)
	expenses, _ := st.ListExpenses(ctx)
	if len(jobs) != 2 {
		t.Errorf("expected 2 seeded jobs, got %d", len(jobs))
	}
	if len(shifts) != 5 {
		t.Errorf("expected 5 seeded shifts, got %d", len(shifts))
	}
	if len(expenses) != 3 {
		t.Errorf("expected 3 seeded expenses, got %d", len(expenses))
	}
}

func TestSeedDemo_ComputesCleanly(t *testing.T) {
	// The seed data must satisfy every engine invariant.
	ctx := context.Background()
	st := newTestStore(t)
	today := payroll.NewDate(2026, time.March, 4)

	if err := st.SeedDemo(ctx, today); err != nil {
		t.Fatalf("SeedDemo: %v", err)
	}

	jobs, _ := st.ListJobs(ctx, true)
	shifts, _ := st.ListShifts(ctx)
	expenses, _ := st.ListExpenses(ctx)

	snap, err := payroll.Compute(payroll.Input{Jobs: jobs, Shifts: shifts, Expenses: expenses, Today: today})
	if err != nil {
		t.Fatalf("Compute over seed data: %v", err)
	}
	if len(snap.Shifts) != 5 {
		t.Errorf("expected 5 shift results, got %d", len(snap.Shifts))
	}
	if !snap.EarningsThisWeek.IsPositive() {
		t.Errorf("expected positive current-week earnings, got %s", snap.EarningsThisWeek)
	}
}
