package payroll_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/shiftsavvy/payroll"
)

func TestWeekly_ExactlyFortyHours_NoOvertime(t *testing.T) {
	// GIVEN: Exactly 40 hours in one week
	// THEN: The budget is fully consumed with zero overtime

	mon := payroll.NewDate(2026, time.June, 1)
	snap, err := payroll.Compute(payroll.Input{
		Jobs: []payroll.Job{weeklyJob()},
		Shifts: []payroll.Shift{
			shift("s1", "job-b", mon, "10"),
			shift("s2", "job-b", mon.AddDays(1), "10"),
			shift("s3", "job-b", mon.AddDays(2), "10"),
			shift("s4", "job-b", mon.AddDays(3), "10"),
		},
		Today: mon,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, se := range snap.Shifts {
		requireEqual(t, "10", se.RegularHours, "regular on "+se.Date.String())
		requireEqual(t, "0", se.OvertimeHours, "overtime on "+se.Date.String())
	}
}

func TestWeekly_SameDayShifts_TieBreakByID(t *testing.T) {
	// GIVEN: Two 24-hour shifts on the same date (48h week)
	// THEN: The lower shift ID consumes budget first

	mon := payroll.NewDate(2026, time.June, 1)
	snap, err := payroll.Compute(payroll.Input{
		Jobs: []payroll.Job{weeklyJob()},
		Shifts: []payroll.Shift{
			shift("b", "job-b", mon, "24"),
			shift("a", "job-b", mon, "24"),
		},
		Today: mon,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Results are ordered date then ID, so "a" is first.
	first, second := snap.Shifts[0], snap.Shifts[1]
	if first.ShiftID != "a" || second.ShiftID != "b" {
		t.Fatalf("expected order a, b; got %s, %s", first.ShiftID, second.ShiftID)
	}
	requireEqual(t, "24", first.RegularHours, "first regular")
	requireEqual(t, "0", first.OvertimeHours, "first overtime")
	requireEqual(t, "16", second.RegularHours, "second regular")
	requireEqual(t, "8", second.OvertimeHours, "second overtime")
}

func TestWeekly_SingleLongShift_SplitsWithinShift(t *testing.T) {
	// GIVEN: A lone 44-hour logical week recorded as two shifts, one of which
	//        straddles the 40-hour boundary
	// THEN: That shift splits into regular and overtime portions

	mon := payroll.NewDate(2026, time.June, 1)
	snap, err := payroll.Compute(payroll.Input{
		Jobs: []payroll.Job{weeklyJob()},
		Shifts: []payroll.Shift{
			shift("s1", "job-b", mon, "24"),
			shift("s2", "job-b", mon.AddDays(1), "20"),
		},
		Today: mon,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second := snap.Shifts[1]
	requireEqual(t, "16", second.RegularHours, "second regular")
	requireEqual(t, "4", second.OvertimeHours, "second overtime")

	// 40*57 + 4*57*1.5 = 2622
	total := decimal.Zero
	for _, se := range snap.Shifts {
		total = total.Add(se.Earnings)
	}
	requireEqual(t, "2622", total, "total earnings")
}

func TestWeekly_SundayToMondayBoundary(t *testing.T) {
	// GIVEN: 30 hours on a Sunday and 30 hours the following Monday
	// THEN: They land in different ISO weeks, so neither triggers overtime

	sun := payroll.NewDate(2026, time.June, 7)
	mon := sun.AddDays(1)
	snap, err := payroll.Compute(payroll.Input{
		Jobs: []payroll.Job{weeklyJob()},
		Shifts: []payroll.Shift{
			shift("s1", "job-b", sun, "24"),
			shift("s2", "job-b", mon, "24"),
		},
		Today: mon,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, se := range snap.Shifts {
		requireEqual(t, "0", se.OvertimeHours, "overtime on "+se.Date.String())
	}
}

func TestWeekly_Daily8JobUnaffectedByWeeklyTotal(t *testing.T) {
	// GIVEN: A daily_8 job working five 9-hour shifts (45h week)
	// THEN: Each shift splits 8+1 on its own; the weekly total is irrelevant

	mon := payroll.NewDate(2026, time.June, 1)
	var shifts []payroll.Shift
	for i := 0; i < 5; i++ {
		shifts = append(shifts, shift(string(rune('a'+i)), "job-a", mon.AddDays(i), "9"))
	}
	snap, err := payroll.Compute(payroll.Input{
		Jobs:   []payroll.Job{dailyJob()},
		Shifts: shifts,
		Today:  mon,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, se := range snap.Shifts {
		requireEqual(t, "8", se.RegularHours, "regular on "+se.Date.String())
		requireEqual(t, "1", se.OvertimeHours, "overtime on "+se.Date.String())
	}
}
