/*
export.go - CSV and PDF export

PURPOSE:
  Streams the raw records as CSV and the computed weekly summary as a PDF.
  Export is a read-only presentation surface: all figures come from the same
  store reads and engine computation the dashboard uses.

FORMATS:
  shifts.csv    id, job, date, hours, kind
  expenses.csv  id, category, amount, date, recurring
  summary.pdf   Current-week earnings/expenses/net, projection, recent weeks

SEE ALSO:
  - handlers.go: computeSnapshot, shared with the dashboard
*/
package api

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/jung-kurt/gofpdf"
)

// ExportShiftsCSV streams all shifts as CSV, newest first.
func (h *Handler) ExportShiftsCSV(w http.ResponseWriter, r *http.Request) {
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
	names := make(map[string]string, len(jobs))
	for _, j := range jobs {
		names[string(j.ID)] = j.Name
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="shifts.csv"`)

	cw := csv.NewWriter(w)
	cw.Write([]string{"id", "job", "shift_date", "hours", "shift_kind"})
	for i := len(shifts) - 1; i >= 0; i-- {
		s := shifts[i]
		cw.Write([]string{
			string(s.ID),
			names[string(s.JobID)],
			s.Date.String(),
			s.Hours.String(),
			s.Kind,
		})
	}
	cw.Flush()
}

// ExportExpensesCSV streams all expenses as CSV, newest first.
func (h *Handler) ExportExpensesCSV(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.Store.ListExpenses(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list expenses", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="expenses.csv"`)

	cw := csv.NewWriter(w)
	cw.Write([]string{"id", "category", "amount", "expense_date", "recurring"})
	for i := len(expenses) - 1; i >= 0; i-- {
		e := expenses[i]
		recurring := "0"
		if e.Recurring {
			recurring = "1"
		}
		cw.Write([]string{
			string(e.ID),
			e.Category,
			e.Amount.String(),
			e.Date.String(),
			recurring,
		})
	}
	cw.Flush()
}

// ExportSummaryPDF renders the computed weekly summary as a PDF.
func (h *Handler) ExportSummaryPDF(w http.ResponseWriter, r *http.Request) {
	snap, settings, err := h.computeSnapshot(r)
	if err != nil {
		writeComputeError(w, err)
		return
	}
	cur := settings.Currency

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Weekly Pay Summary")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Week of %s (as of %s)", snap.Today.WeekStart(), snap.Today))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Earnings this week: %s%s", cur, snap.EarningsThisWeek.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Expenses this week: %s%s", cur, snap.ExpensesThisWeek.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net this week: %s%s", cur, snap.NetThisWeek.StringFixed(2)))
	if settings.ShowAnnualProjection {
		pdf.Ln(10)
		pdf.Cell(0, 8, fmt.Sprintf("Projected annual net: %s%s", cur, snap.ProjectedAnnualNet.StringFixed(0)))
	}

	pdf.Ln(12)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Recent weeks")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
	for _, wk := range snap.ChartWindow(chartWeeks) {
		pdf.Cell(0, 7, fmt.Sprintf("%s    earned %s%s    spent %s%s    net %s%s",
			wk.WeekStart,
			cur, wk.Earnings.StringFixed(2),
			cur, wk.Expenses.StringFixed(2),
			cur, wk.Net().StringFixed(2)))
		pdf.Ln(6)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="summary.pdf"`)
	if err := pdf.Output(w); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to render PDF", err)
	}
}
