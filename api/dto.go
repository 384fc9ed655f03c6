/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

MONEY FIELDS:
  Decimal values cross the wire as JSON numbers. The engine keeps full
  decimal precision internally; DTOs are a display surface.

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - payroll/types.go: Domain model
*/
package api

import (
	"github.com/warp/shiftsavvy/payroll"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// JobDTO represents a job in API responses.
type JobDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	BaseRate     float64 `json:"base_rate"`
	OvertimeRule string  `json:"ot_rule"`
	Multiplier   float64 `json:"ot_multiplier"`
	DiffType     string  `json:"diff_type"`
	DiffValue    float64 `json:"diff_value"`
	Active       bool    `json:"active"`
}

// SaveJobRequest is the request to create or update a job.
type SaveJobRequest struct {
	Name         string  `json:"name"`
	BaseRate     float64 `json:"base_rate"`
	OvertimeRule string  `json:"ot_rule"`
	Multiplier   float64 `json:"ot_multiplier"`
	DiffType     string  `json:"diff_type"`
	DiffValue    float64 `json:"diff_value"`
	Active       bool    `json:"active"`
}

// ShiftDTO represents a shift in API responses.
type ShiftDTO struct {
	ID      string  `json:"id"`
	JobID   string  `json:"job_id"`
	JobName string  `json:"job_name,omitempty"`
	Date    string  `json:"date"`
	Hours   float64 `json:"hours"`
	Kind    string  `json:"kind"`
}

// CreateShiftRequest is the request to record a shift.
type CreateShiftRequest struct {
	JobID string  `json:"job_id"`
	Date  string  `json:"date"` // YYYY-MM-DD
	Hours float64 `json:"hours"`
	Kind  string  `json:"kind"`
}

// ExpenseDTO represents an expense in API responses.
type ExpenseDTO struct {
	ID        string  `json:"id"`
	Category  string  `json:"category"`
	Amount    float64 `json:"amount"`
	Date      string  `json:"date"`
	Recurring bool    `json:"recurring"`
}

// CreateExpenseRequest is the request to record an expense.
type CreateExpenseRequest struct {
	Category  string  `json:"category"`
	Amount    float64 `json:"amount"`
	Date      string  `json:"date"` // YYYY-MM-DD
	Recurring bool    `json:"recurring"`
}

// SettingsDTO carries the display preferences.
type SettingsDTO struct {
	Currency             string `json:"currency"`
	ShowAnnualProjection bool   `json:"show_annual_projection"`
	// Display preference only; weekly bucketing is always Monday-start.
	WeekStartsMonday bool `json:"week_starts_monday"`
}

// ShiftEarningsDTO is the finalized pay for one shift.
type ShiftEarningsDTO struct {
	ShiftID       string  `json:"shift_id"`
	JobID         string  `json:"job_id"`
	Date          string  `json:"date"`
	Hours         float64 `json:"hours"`
	Kind          string  `json:"kind"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	Earnings      float64 `json:"earnings"`
}

// WeekBucketDTO is one calendar week of summed earnings and expenses.
type WeekBucketDTO struct {
	WeekStart string  `json:"week_start"`
	Earnings  float64 `json:"earnings"`
	Expenses  float64 `json:"expenses"`
	Net       float64 `json:"net"`
}

// DashboardDTO is the full dashboard payload: the computed snapshot plus the
// chart window and the display settings the frontend renders with.
type DashboardDTO struct {
	AsOf               string             `json:"as_of"`
	Shifts             []ShiftEarningsDTO `json:"shifts"`
	Weeks              []WeekBucketDTO    `json:"weeks"`
	Chart              []WeekBucketDTO    `json:"chart"`
	EarningsThisWeek   float64            `json:"earnings_this_week"`
	ExpensesThisWeek   float64            `json:"expenses_this_week"`
	NetThisWeek        float64            `json:"net_this_week"`
	AvgWeeklyNet       float64            `json:"avg_weekly_net"`
	ProjectedAnnualNet float64            `json:"projected_annual_net"`
	Settings           SettingsDTO        `json:"settings"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toJobDTO(j payroll.Job) JobDTO {
	return JobDTO{
		ID:           string(j.ID),
		Name:         j.Name,
		BaseRate:     j.BaseRate.InexactFloat64(),
		OvertimeRule: string(j.OvertimeRule),
		Multiplier:   j.Multiplier.InexactFloat64(),
		DiffType:     string(j.DiffType),
		DiffValue:    j.DiffValue.InexactFloat64(),
		Active:       j.Active,
	}
}

func toShiftDTO(s payroll.Shift, jobName string) ShiftDTO {
	return ShiftDTO{
		ID:      string(s.ID),
		JobID:   string(s.JobID),
		JobName: jobName,
		Date:    s.Date.String(),
		Hours:   s.Hours.InexactFloat64(),
		Kind:    s.Kind,
	}
}

func toExpenseDTO(e payroll.Expense) ExpenseDTO {
	return ExpenseDTO{
		ID:        string(e.ID),
		Category:  e.Category,
		Amount:    e.Amount.InexactFloat64(),
		Date:      e.Date.String(),
		Recurring: e.Recurring,
	}
}

func toSettingsDTO(s payroll.Settings) SettingsDTO {
	return SettingsDTO{
		Currency:             s.Currency,
		ShowAnnualProjection: s.ShowAnnualProjection,
		WeekStartsMonday:     s.WeekStartsMonday,
	}
}

func toWeekBucketDTOs(weeks []payroll.WeekBucket) []WeekBucketDTO {
	dtos := make([]WeekBucketDTO, len(weeks))
	for i, w := range weeks {
		dtos[i] = WeekBucketDTO{
			WeekStart: w.WeekStart.String(),
			Earnings:  w.Earnings.InexactFloat64(),
			Expenses:  w.Expenses.InexactFloat64(),
			Net:       w.Net().InexactFloat64(),
		}
	}
	return dtos
}

func toDashboardDTO(snap *payroll.Snapshot, settings payroll.Settings, chartWeeks int) DashboardDTO {
	shiftDTOs := make([]ShiftEarningsDTO, len(snap.Shifts))
	for i, se := range snap.Shifts {
		shiftDTOs[i] = ShiftEarningsDTO{
			ShiftID:       string(se.ShiftID),
			JobID:         string(se.JobID),
			Date:          se.Date.String(),
			Hours:         se.Hours.InexactFloat64(),
			Kind:          se.Kind,
			RegularHours:  se.RegularHours.InexactFloat64(),
			OvertimeHours: se.OvertimeHours.InexactFloat64(),
			Earnings:      se.Earnings.InexactFloat64(),
		}
	}
	return DashboardDTO{
		AsOf:               snap.Today.String(),
		Shifts:             shiftDTOs,
		Weeks:              toWeekBucketDTOs(snap.Weeks),
		Chart:              toWeekBucketDTOs(snap.ChartWindow(chartWeeks)),
		EarningsThisWeek:   snap.EarningsThisWeek.InexactFloat64(),
		ExpensesThisWeek:   snap.ExpensesThisWeek.InexactFloat64(),
		NetThisWeek:        snap.NetThisWeek.InexactFloat64(),
		AvgWeeklyNet:       snap.AvgWeeklyNet.InexactFloat64(),
		ProjectedAnnualNet: snap.ProjectedAnnualNet.InexactFloat64(),
		Settings:           toSettingsDTO(settings),
	}
}
