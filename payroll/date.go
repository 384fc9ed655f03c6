package payroll

import "time"

// =============================================================================
// DATE - Day-granular calendar date (pay math never needs finer resolution)
// =============================================================================

// Date is a calendar day in UTC. Shifts and expenses are dated, not timed.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time.Time to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// Comparison
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) IsZero() bool           { return d.t.IsZero() }

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// Properties
func (d Date) Year() int          { return d.t.Year() }
func (d Date) Month() time.Month  { return d.t.Month() }
func (d Date) Day() int           { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) Time() time.Time    { return d.t }

func (d Date) String() string { return d.t.Format("2006-01-02") }

// =============================================================================
// WEEK CALENDAR
// =============================================================================

// WeekStart returns the Monday that starts the calendar week containing d.
// Weekly bucketing is always Monday-start, independent of any display
// preference for where the week "starts".
func (d Date) WeekStart() Date {
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return d.AddDays(-offset)
}

// ISOWeek returns the ISO 8601 year and week number containing d.
// Used as the grouping key for weekly overtime reallocation.
func (d Date) ISOWeek() (year, week int) {
	return d.t.ISOWeek()
}
