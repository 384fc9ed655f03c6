package payroll_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/shiftsavvy/payroll"
)

func TestDifferential_Percent(t *testing.T) {
	// 38.0 base with a 10 percent differential adds 3.80/hr.
	add := payroll.Differential(dec("38.0"), payroll.DifferentialPercent, dec("10"))
	requireEqual(t, "3.8", add, "percent differential")
}

func TestDifferential_Fixed(t *testing.T) {
	// A fixed differential ignores the base rate entirely.
	add := payroll.Differential(dec("55.0"), payroll.DifferentialFixed, dec("2.0"))
	requireEqual(t, "2.0", add, "fixed differential")

	add = payroll.Differential(dec("120.0"), payroll.DifferentialFixed, dec("2.0"))
	requireEqual(t, "2.0", add, "fixed differential at higher base")
}

func TestDifferential_ZeroValue(t *testing.T) {
	for _, dt := range []payroll.DifferentialType{payroll.DifferentialPercent, payroll.DifferentialFixed} {
		add := payroll.Differential(dec("38.0"), dt, decimal.Zero)
		requireEqual(t, "0", add, "zero differential for "+string(dt))
	}
}

func TestEffectiveRate(t *testing.T) {
	cases := []struct {
		name string
		job  payroll.Job
		want string
	}{
		{
			name: "percent on daily job",
			job: payroll.Job{
				BaseRate:  dec("38.0"),
				DiffType:  payroll.DifferentialPercent,
				DiffValue: dec("10"),
			},
			want: "41.8",
		},
		{
			name: "fixed on weekly job",
			job: payroll.Job{
				BaseRate:  dec("55.0"),
				DiffType:  payroll.DifferentialFixed,
				DiffValue: dec("2.0"),
			},
			want: "57.0",
		},
		{
			name: "no differential",
			job: payroll.Job{
				BaseRate:  dec("38.0"),
				DiffType:  payroll.DifferentialPercent,
				DiffValue: decimal.Zero,
			},
			want: "38.0",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			requireEqual(t, c.want, payroll.EffectiveRate(c.job), "effective rate")
		})
	}
}

func TestDifferential_AppliesBeforeOvertimeMultiplier(t *testing.T) {
	// GIVEN: daily_8 job with base 40.0, 10 percent differential, 2.0x overtime
	// WHEN: A 10-hour shift
	// THEN: The multiplier applies to the differential-adjusted rate:
	//       8*44 + 2*44*2 = 352 + 176 = 528

	job := dailyJob()
	job.BaseRate = dec("40.0")
	job.DiffValue = dec("10")
	job.Multiplier = dec("2.0")

	day := payroll.NewDate(2026, time.March, 3)
	snap, err := payroll.Compute(payroll.Input{
		Jobs:   []payroll.Job{job},
		Shifts: []payroll.Shift{shift("s1", "job-a", day, "10")},
		Today:  day,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	requireEqual(t, "528", snap.Shifts[0].Earnings, "earnings")
}
