package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/shiftsavvy/payroll"
)

// SeedDemo loads demo jobs, shifts, and expenses into an empty database.
// Safe to call repeatedly: each table is seeded only when it has no rows.
func (s *Store) SeedDemo(ctx context.Context, today payroll.Date) error {
	jobs, err := s.ListJobs(ctx, false)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		staff := payroll.Job{
			Name:         "RN - Staff",
			BaseRate:     decimal.NewFromFloat(38.0),
			OvertimeRule: payroll.OvertimeWeekly40,
			Multiplier:   decimal.NewFromFloat(1.5),
			DiffType:     payroll.DifferentialPercent,
			DiffValue:    decimal.NewFromFloat(10.0),
			Active:       true,
		}
		prn := payroll.Job{
			Name:         "RN - PRN",
			BaseRate:     decimal.NewFromFloat(55.0),
			OvertimeRule: payroll.OvertimeDaily8,
			Multiplier:   decimal.NewFromFloat(1.5),
			DiffType:     payroll.DifferentialFixed,
			DiffValue:    decimal.NewFromFloat(2.0),
			Active:       true,
		}
		staff, err = s.CreateJob(ctx, staff)
		if err != nil {
			return fmt.Errorf("failed to seed jobs: %w", err)
		}
		if _, err := s.CreateJob(ctx, prn); err != nil {
			return fmt.Errorf("failed to seed jobs: %w", err)
		}
		jobs = []payroll.Job{staff}
	}

	shifts, err := s.ListShifts(ctx)
	if err != nil {
		return err
	}
	if len(shifts) == 0 && len(jobs) > 0 {
		jobID := jobs[0].ID
		for _, daysAgo := range []int{1, 2, 3, 5, 6} {
			d := today.AddDays(-daysAgo)
			hours, kind := decimal.NewFromInt(10), "Day"
			if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
				hours, kind = decimal.NewFromInt(12), "Night"
			}
			_, err := s.CreateShift(ctx, payroll.Shift{JobID: jobID, Date: d, Hours: hours, Kind: kind})
			if err != nil {
				return fmt.Errorf("failed to seed shifts: %w", err)
			}
		}
	}

	expenses, err := s.ListExpenses(ctx)
	if err != nil {
		return err
	}
	if len(expenses) == 0 {
		monthStart := payroll.NewDate(today.Year(), today.Month(), 1)
		demo := []payroll.Expense{
			{Category: "Gas", Amount: decimal.NewFromFloat(60.0), Date: today},
			{Category: "Food", Amount: decimal.NewFromFloat(120.0), Date: today},
			{Category: "Rent", Amount: decimal.NewFromFloat(1500.0), Date: monthStart, Recurring: true},
		}
		for _, e := range demo {
			if _, err := s.CreateExpense(ctx, e); err != nil {
				return fmt.Errorf("failed to seed expenses: %w", err)
			}
		}
	}
	return nil
}
