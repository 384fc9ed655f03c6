/*
handlers.go - HTTP API handlers for the shift/expense tracker

PURPOSE:
  Exposes the payroll engine and its persistence collaborator via REST API.
  Handles HTTP request/response, JSON serialization, and delegates all pay
  math to the payroll package.

ENDPOINTS:
  Jobs:
    GET    /api/jobs              List jobs (?active=true filters)
    POST   /api/jobs              Create job
    GET    /api/jobs/{id}         Get job
    PUT    /api/jobs/{id}         Update job
    DELETE /api/jobs/{id}         Delete job (cascades to its shifts)

  Shifts:
    GET    /api/shifts            List shifts
    POST   /api/shifts            Record a shift
    DELETE /api/shifts/{id}       Delete a shift

  Expenses:
    GET    /api/expenses          List expenses
    POST   /api/expenses          Record an expense
    DELETE /api/expenses/{id}     Delete an expense

  Dashboard:
    GET    /api/dashboard         Full payroll snapshot (?as_of=YYYY-MM-DD)

  Settings:
    GET    /api/settings          Display preferences
    PUT    /api/settings          Update display preferences

  Export (export.go):
    GET    /api/export/shifts.csv
    GET    /api/export/expenses.csv
    GET    /api/export/summary.pdf

REQUEST FLOW:
  1. Parse HTTP request
  2. Validate input (payroll validators)
  3. Call store / engine
  4. Serialize response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, dangling references, invalid input
  - 404: Record not found
  - 500: Internal errors

CLOCK:
  The engine never reads the clock. The dashboard handler resolves "today"
  from the as_of query parameter, falling back to the server clock, and
  passes it to Compute explicitly.

SECURITY NOTE:
  Currently NO authentication or authorization. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - payroll/engine.go: The computation this API fronts
*/
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/warp/shiftsavvy/payroll"
)

// chartWeeks is the dashboard chart window: the current week and the seven
// before it.
const chartWeeks = 8

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store payroll.Store

	// now supplies the fallback reference date when as_of is absent.
	// Overridable in tests.
	now func() time.Time
}

// NewHandler creates a new handler backed by the given store.
func NewHandler(store payroll.Store) *Handler {
	return &Handler{Store: store, now: time.Now}
}

// =============================================================================
// JOB HANDLERS
// =============================================================================

// ListJobs returns all jobs, or only active ones with ?active=true.
func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	jobs, err := h.Store.ListJobs(r.Context(), activeOnly)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list jobs", err)
		return
	}
	dtos := make([]JobDTO, len(jobs))
	for i, j := range jobs {
		dtos[i] = toJobDTO(j)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateJob creates a job after validating its pay configuration.
func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req SaveJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	job := jobFromRequest("", req)
	if err := payroll.ValidateJob(job); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid job", err)
		return
	}
	job, err := h.Store.CreateJob(r.Context(), job)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create job", err)
		return
	}
	writeJSON(w, http.StatusCreated, toJobDTO(job))
}

// GetJob returns a single job.
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	id := payroll.JobID(chi.URLParam(r, "id"))
	job, err := h.Store.GetJob(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get job", err)
		return
	}
	if job == nil {
		writeError(w, http.StatusNotFound, "Job not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toJobDTO(*job))
}

// UpdateJob replaces a job's pay configuration. Jobs are not versioned:
// a rate change recomputes the pay of all historical shifts on the next
// dashboard read.
func (h *Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	id := payroll.JobID(chi.URLParam(r, "id"))
	var req SaveJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	job := jobFromRequest(id, req)
	if err := payroll.ValidateJob(job); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid job", err)
		return
	}
	if err := h.Store.UpdateJob(r.Context(), job); err != nil {
		writeStoreError(w, "Failed to update job", err)
		return
	}
	writeJSON(w, http.StatusOK, toJobDTO(job))
}

// DeleteJob removes a job and, via the store's cascade, its shifts.
func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id := payroll.JobID(chi.URLParam(r, "id"))
	if err := h.Store.DeleteJob(r.Context(), id); err != nil {
		writeStoreError(w, "Failed to delete job", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// SHIFT HANDLERS
// =============================================================================

// ListShifts returns all shifts with their job names, newest first.
func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.Store.ListShifts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list shifts", err)
		return
	}
	jobs, err := h.Store.ListJobs(r.Context(), false)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list jobs", err)
		return
	}
	names := make(map[payroll.JobID]string, len(jobs))
	for _, j := range jobs {
		names[j.ID] = j.Name
	}

	dtos := make([]ShiftDTO, 0, len(shifts))
	for i := len(shifts) - 1; i >= 0; i-- {
		s := shifts[i]
		dtos = append(dtos, toShiftDTO(s, names[s.JobID]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateShift records a worked shift against a job.
func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	date, err := payroll.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date, want YYYY-MM-DD", err)
		return
	}
	shift := payroll.Shift{
		JobID: payroll.JobID(req.JobID),
		Date:  date,
		Hours: decimal.NewFromFloat(req.Hours),
		Kind:  req.Kind,
	}
	if shift.Kind == "" {
		shift.Kind = "Day"
	}
	if err := payroll.ValidateShift(shift); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid shift", err)
		return
	}
	job, err := h.Store.GetJob(r.Context(), shift.JobID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to check job", err)
		return
	}
	if job == nil {
		writeError(w, http.StatusBadRequest, "Unknown job", &payroll.ReferentialError{JobID: shift.JobID, Date: date})
		return
	}
	shift, err = h.Store.CreateShift(r.Context(), shift)
	if err != nil {
		writeStoreError(w, "Failed to create shift", err)
		return
	}
	writeJSON(w, http.StatusCreated, toShiftDTO(shift, job.Name))
}

// DeleteShift removes a shift.
func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	id := payroll.ShiftID(chi.URLParam(r, "id"))
	if err := h.Store.DeleteShift(r.Context(), id); err != nil {
		writeStoreError(w, "Failed to delete shift", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// EXPENSE HANDLERS
// =============================================================================

// ListExpenses returns all expenses, newest first.
func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.Store.ListExpenses(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list expenses", err)
		return
	}
	dtos := make([]ExpenseDTO, 0, len(expenses))
	for i := len(expenses) - 1; i >= 0; i-- {
		dtos = append(dtos, toExpenseDTO(expenses[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateExpense records an expense. The recurring flag is stored untouched;
// it never changes any computed total.
func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	date, err := payroll.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date, want YYYY-MM-DD", err)
		return
	}
	expense := payroll.Expense{
		Category:  req.Category,
		Amount:    decimal.NewFromFloat(req.Amount),
		Date:      date,
		Recurring: req.Recurring,
	}
	if err := payroll.ValidateExpense(expense); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid expense", err)
		return
	}
	expense, err = h.Store.CreateExpense(r.Context(), expense)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create expense", err)
		return
	}
	writeJSON(w, http.StatusCreated, toExpenseDTO(expense))
}

// DeleteExpense removes an expense.
func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id := payroll.ExpenseID(chi.URLParam(r, "id"))
	if err := h.Store.DeleteExpense(r.Context(), id); err != nil {
		writeStoreError(w, "Failed to delete expense", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// DASHBOARD
// =============================================================================

// Dashboard loads an active-jobs snapshot from the store, runs the payroll
// engine, and returns the full derived view.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	snap, settings, err := h.computeSnapshot(r)
	if err != nil {
		writeComputeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDashboardDTO(snap, settings, chartWeeks))
}

// computeSnapshot assembles the engine input and runs Compute. Shared by the
// dashboard and the PDF export.
func (h *Handler) computeSnapshot(r *http.Request) (*payroll.Snapshot, payroll.Settings, error) {
	ctx := r.Context()

	today := payroll.DateOf(h.now())
	if asOf := r.URL.Query().Get("as_of"); asOf != "" {
		parsed, err := payroll.ParseDate(asOf)
		if err != nil {
			return nil, payroll.Settings{}, &payroll.ValidationError{
				Record: "query", ID: "as_of", Field: "date", Reason: "want YYYY-MM-DD",
			}
		}
		today = parsed
	}

	jobs, err := h.Store.ListJobs(ctx, true)
	if err != nil {
		return nil, payroll.Settings{}, err
	}
	shifts, err := h.Store.ListShifts(ctx)
	if err != nil {
		return nil, payroll.Settings{}, err
	}
	expenses, err := h.Store.ListExpenses(ctx)
	if err != nil {
		return nil, payroll.Settings{}, err
	}
	settings, err := h.Store.GetSettings(ctx)
	if err != nil {
		return nil, payroll.Settings{}, err
	}

	// Shifts of inactive jobs would be dangling in an active-only snapshot;
	// drop them here, at the boundary, where the active filter lives.
	active := make(map[payroll.JobID]bool, len(jobs))
	for _, j := range jobs {
		active[j.ID] = true
	}
	kept := shifts[:0]
	for _, s := range shifts {
		if active[s.JobID] {
			kept = append(kept, s)
		}
	}

	snap, err := payroll.Compute(payroll.Input{
		Jobs:     jobs,
		Shifts:   kept,
		Expenses: expenses,
		Today:    today,
	})
	if err != nil {
		return nil, payroll.Settings{}, err
	}
	return snap, settings, nil
}

// =============================================================================
// SETTINGS HANDLERS
// =============================================================================

// GetSettings returns the display preferences.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Store.GetSettings(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get settings", err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsDTO(settings))
}

// UpdateSettings saves the display preferences. They never change what the
// engine computes, only what the frontend shows.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Currency == "" {
		req.Currency = "$"
	}
	settings := payroll.Settings{
		Currency:             req.Currency,
		ShowAnnualProjection: req.ShowAnnualProjection,
		WeekStartsMonday:     req.WeekStartsMonday,
	}
	if err := h.Store.UpdateSettings(r.Context(), settings); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update settings", err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsDTO(settings))
}

// =============================================================================
// HELPERS
// =============================================================================

func jobFromRequest(id payroll.JobID, req SaveJobRequest) payroll.Job {
	return payroll.Job{
		ID:           id,
		Name:         req.Name,
		BaseRate:     decimal.NewFromFloat(req.BaseRate),
		OvertimeRule: payroll.OvertimeRule(req.OvertimeRule),
		Multiplier:   decimal.NewFromFloat(req.Multiplier),
		DiffType:     payroll.DifferentialType(req.DiffType),
		DiffValue:    decimal.NewFromFloat(req.DiffValue),
		Active:       req.Active,
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	if status >= 500 {
		log.Printf("[API] %s: %v", message, err)
	}
	writeJSON(w, status, resp)
}

func writeStoreError(w http.ResponseWriter, message string, err error) {
	if errors.Is(err, payroll.ErrNotFound) {
		writeError(w, http.StatusNotFound, message, err)
		return
	}
	writeError(w, http.StatusInternalServerError, message, err)
}

func writeComputeError(w http.ResponseWriter, err error) {
	if payroll.IsClientError(err) {
		writeError(w, http.StatusBadRequest, "Invalid payroll data", err)
		return
	}
	writeError(w, http.StatusInternalServerError, "Failed to compute payroll", err)
}
