package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/shiftsavvy/payroll"
	"github.com/warp/shiftsavvy/payroll/store"
)

func testJob(name string) payroll.Job {
	return payroll.Job{
		Name:         name,
		BaseRate:     decimal.NewFromInt(38),
		OvertimeRule: payroll.OvertimeDaily8,
		Multiplier:   decimal.NewFromFloat(1.5),
		DiffType:     payroll.DifferentialPercent,
		DiffValue:    decimal.Zero,
		Active:       true,
	}
}

func TestMemory_JobCRUD(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	created, err := m.CreateJob(ctx, testJob("RN - Staff"))
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated job ID")
	}

	got, err := m.GetJob(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetJob: %v", err)
	}
	if got == nil || got.Name != "RN - Staff" {
		t.Fatalf("unexpected job: %+v", got)
	}

	created.Name = "RN - Charge"
	if err := m.UpdateJob(ctx, created); err != nil {
		t.Fatalf("UpdateJob: %v", err)
	}
	got, _ = m.GetJob(ctx, created.ID)
	if got.Name != "RN - Charge" {
		t.Errorf("update not applied: %s", got.Name)
	}

	if err := m.DeleteJob(ctx, created.ID); err != nil {
		t.Fatalf("DeleteJob: %v", err)
	}
	got, err = m.GetJob(ctx, created.ID)
	if err != nil || got != nil {
		t.Errorf("expected nil after delete, got %+v, %v", got, err)
	}
}

func TestMemory_DeleteJob_CascadesShifts(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	job, _ := m.CreateJob(ctx, testJob("RN - Staff"))
	keep, _ := m.CreateJob(ctx, testJob("RN - PRN"))

	day := payroll.NewDate(2026, time.March, 3)
	if _, err := m.CreateShift(ctx, payroll.Shift{JobID: job.ID, Date: day, Hours: decimal.NewFromInt(8), Kind: "Day"}); err != nil {
		t.Fatalf("CreateShift: %v", err)
	}
	kept, err := m.CreateShift(ctx, payroll.Shift{JobID: keep.ID, Date: day, Hours: decimal.NewFromInt(8), Kind: "Day"})
	if err != nil {
		t.Fatalf("CreateShift: %v", err)
	}

	if err := m.DeleteJob(ctx, job.ID); err != nil {
		t.Fatalf("DeleteJob: %v", err)
	}

	shifts, err := m.ListShifts(ctx)
	if err != nil {
		t.Fatalf("ListShifts: %v", err)
	}
	if len(shifts) != 1 || shifts[0].ID != kept.ID {
		t.Errorf("expected only the other job's shift to survive, got %+v", shifts)
	}
}

func TestMemory_NotFound(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	if err := m.UpdateJob(ctx, payroll.Job{ID: "nope"}); !errors.Is(err, payroll.ErrNotFound) {
		t.Errorf("UpdateJob: expected ErrNotFound, got %v", err)
	}
	if err := m.DeleteShift(ctx, "nope"); !errors.Is(err, payroll.ErrNotFound) {
		t.Errorf("DeleteShift: expected ErrNotFound, got %v", err)
	}
	if err := m.DeleteExpense(ctx, "nope"); !errors.Is(err, payroll.ErrNotFound) {
		t.Errorf("DeleteExpense: expected ErrNotFound, got %v", err)
	}
	if _, err := m.CreateShift(ctx, payroll.Shift{JobID: "nope"}); !errors.Is(err, payroll.ErrNotFound) {
		t.Errorf("CreateShift with dangling job: expected ErrNotFound, got %v", err)
	}
}

func TestMemory_ListJobs_ActiveFilterAndOrder(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	inactive := testJob("Old Job")
	inactive.Active = false
	m.CreateJob(ctx, inactive)
	m.CreateJob(ctx, testJob("B Job"))
	m.CreateJob(ctx, testJob("A Job"))

	all, err := m.ListJobs(ctx, false)
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(all))
	}
	if all[0].Name != "A Job" || all[1].Name != "B Job" {
		t.Errorf("jobs not sorted by name: %s, %s", all[0].Name, all[1].Name)
	}

	active, err := m.ListJobs(ctx, true)
	if err != nil {
		t.Fatalf("ListJobs(active): %v", err)
	}
	if len(active) != 2 {
		t.Errorf("expected 2 active jobs, got %d", len(active))
	}
}

func TestMemory_ListShifts_Chronological(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	job, _ := m.CreateJob(ctx, testJob("RN - Staff"))
	d1 := payroll.NewDate(2026, time.March, 3)
	d2 := d1.AddDays(2)

	m.CreateShift(ctx, payroll.Shift{ID: "later", JobID: job.ID, Date: d2, Hours: decimal.NewFromInt(8)})
	m.CreateShift(ctx, payroll.Shift{ID: "earlier", JobID: job.ID, Date: d1, Hours: decimal.NewFromInt(8)})

	shifts, err := m.ListShifts(ctx)
	if err != nil {
		t.Fatalf("ListShifts: %v", err)
	}
	if shifts[0].ID != "earlier" || shifts[1].ID != "later" {
		t.Errorf("shifts not chronological: %s, %s", shifts[0].ID, shifts[1].ID)
	}
}

func TestMemory_Settings(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	s, err := m.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if s != payroll.DefaultSettings() {
		t.Errorf("expected defaults, got %+v", s)
	}

	s.Currency = "€"
	s.ShowAnnualProjection = false
	if err := m.UpdateSettings(ctx, s); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	got, _ := m.GetSettings(ctx)
	if got != s {
		t.Errorf("settings not persisted: %+v", got)
	}
}
