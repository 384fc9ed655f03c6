/*
Package sqlite provides a SQLite-backed implementation of payroll.Store.

PURPOSE:
  Persists jobs, shifts, expenses, and display settings. In production the
  same patterns apply to PostgreSQL - only minor SQL dialect differences.

KEY TABLES:
  jobs:      Pay configurations (rate, overtime rule, differential)
  shifts:    Worked periods, foreign key to jobs (ON DELETE CASCADE)
  expenses:  Dated outflows with an informational recurring flag
  settings:  Single display-preferences row (id = 1)

NUMERIC STORAGE:
  Rates, hours, and amounts are stored as TEXT and parsed with
  decimal.NewFromString, so values round-trip without floating-point drift.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  multiple readers don't block, a single writer at a time.

USAGE:
  st, err := sqlite.New("./shiftsavvy.db")
  if err != nil {
      log.Fatal(err)
  }
  defer st.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper migration
  tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - payroll/store.go: Interface definition
  - payroll/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/warp/shiftsavvy/payroll"
)

// Store implements payroll.Store using SQLite.
type Store struct {
	db *sql.DB
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	st := &Store{db: db}
	if err := st.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return st, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		currency TEXT NOT NULL DEFAULT '$',
		show_annual_projection INTEGER NOT NULL DEFAULT 1,
		week_starts_monday INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS jobs (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		base_rate TEXT NOT NULL,
		ot_rule TEXT NOT NULL CHECK(ot_rule IN ('weekly_40','daily_8')),
		ot_multiplier TEXT NOT NULL DEFAULT '1.5',
		diff_type TEXT NOT NULL CHECK(diff_type IN ('percent','fixed')) DEFAULT 'percent',
		diff_value TEXT NOT NULL DEFAULT '0',
		active INTEGER NOT NULL DEFAULT 1
	);

	CREATE TABLE IF NOT EXISTS shifts (
		id TEXT PRIMARY KEY,
		job_id TEXT NOT NULL,
		shift_date TEXT NOT NULL,
		hours TEXT NOT NULL,
		shift_kind TEXT NOT NULL DEFAULT 'Day',
		FOREIGN KEY(job_id) REFERENCES jobs(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_shifts_job ON shifts(job_id);
	CREATE INDEX IF NOT EXISTS idx_shifts_date ON shifts(shift_date);

	CREATE TABLE IF NOT EXISTS expenses (
		id TEXT PRIMARY KEY,
		category TEXT NOT NULL,
		amount TEXT NOT NULL,
		expense_date TEXT NOT NULL,
		recurring INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(expense_date);

	INSERT OR IGNORE INTO settings (id, currency, show_annual_projection, week_starts_monday)
	VALUES (1, '$', 1, 0);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// JOBS
// =============================================================================

func (s *Store) CreateJob(ctx context.Context, j payroll.Job) (payroll.Job, error) {
	if j.ID == "" {
		j.ID = payroll.JobID(uuid.NewString())
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO jobs (id, name, base_rate, ot_rule, ot_multiplier, diff_type, diff_value, active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		string(j.ID), j.Name, j.BaseRate.String(), string(j.OvertimeRule),
		j.Multiplier.String(), string(j.DiffType), j.DiffValue.String(), boolToInt(j.Active))
	if err != nil {
		return payroll.Job{}, fmt.Errorf("failed to create job: %w", err)
	}
	return j, nil
}

func (s *Store) UpdateJob(ctx context.Context, j payroll.Job) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE jobs SET name=?, base_rate=?, ot_rule=?, ot_multiplier=?, diff_type=?, diff_value=?, active=?
		WHERE id=?`,
		j.Name, j.BaseRate.String(), string(j.OvertimeRule), j.Multiplier.String(),
		string(j.DiffType), j.DiffValue.String(), boolToInt(j.Active), string(j.ID))
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	return requireRow(res)
}

func (s *Store) DeleteJob(ctx context.Context, id payroll.JobID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM jobs WHERE id=?`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return requireRow(res)
}

func (s *Store) GetJob(ctx context.Context, id payroll.JobID) (*payroll.Job, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, base_rate, ot_rule, ot_multiplier, diff_type, diff_value, active
		FROM jobs WHERE id=?`, string(id))
	j, err := scanJob(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &j, nil
}

func (s *Store) ListJobs(ctx context.Context, activeOnly bool) ([]payroll.Job, error) {
	query := `
		SELECT id, name, base_rate, ot_rule, ot_multiplier, diff_type, diff_value, active
		FROM jobs`
	if activeOnly {
		query += ` WHERE active=1`
	}
	query += ` ORDER BY name, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []payroll.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// =============================================================================
// SHIFTS
// =============================================================================

func (s *Store) CreateShift(ctx context.Context, sh payroll.Shift) (payroll.Shift, error) {
	if sh.ID == "" {
		sh.ID = payroll.ShiftID(uuid.NewString())
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO shifts (id, job_id, shift_date, hours, shift_kind)
		VALUES (?, ?, ?, ?, ?)`,
		string(sh.ID), string(sh.JobID), sh.Date.String(), sh.Hours.String(), sh.Kind)
	if err != nil {
		return payroll.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return sh, nil
}

func (s *Store) DeleteShift(ctx context.Context, id payroll.ShiftID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM shifts WHERE id=?`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return requireRow(res)
}

func (s *Store) ListShifts(ctx context.Context) ([]payroll.Shift, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, job_id, shift_date, hours, shift_kind
		FROM shifts ORDER BY shift_date ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []payroll.Shift
	for rows.Next() {
		var id, jobID, dateStr, hoursStr, kind string
		if err := rows.Scan(&id, &jobID, &dateStr, &hoursStr, &kind); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		date, err := payroll.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("bad shift date %q: %w", dateStr, err)
		}
		hours, err := decimal.NewFromString(hoursStr)
		if err != nil {
			return nil, fmt.Errorf("bad shift hours %q: %w", hoursStr, err)
		}
		shifts = append(shifts, payroll.Shift{
			ID:    payroll.ShiftID(id),
			JobID: payroll.JobID(jobID),
			Date:  date,
			Hours: hours,
			Kind:  kind,
		})
	}
	return shifts, rows.Err()
}

// =============================================================================
// EXPENSES
// =============================================================================

func (s *Store) CreateExpense(ctx context.Context, e payroll.Expense) (payroll.Expense, error) {
	if e.ID == "" {
		e.ID = payroll.ExpenseID(uuid.NewString())
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (id, category, amount, expense_date, recurring)
		VALUES (?, ?, ?, ?, ?)`,
		string(e.ID), e.Category, e.Amount.String(), e.Date.String(), boolToInt(e.Recurring))
	if err != nil {
		return payroll.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}
	return e, nil
}

func (s *Store) DeleteExpense(ctx context.Context, id payroll.ExpenseID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id=?`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return requireRow(res)
}

func (s *Store) ListExpenses(ctx context.Context) ([]payroll.Expense, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, category, amount, expense_date, recurring
		FROM expenses ORDER BY expense_date ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []payroll.Expense
	for rows.Next() {
		var (
			id, category, amountStr, dateStr string
			recurring                        int
		)
		if err := rows.Scan(&id, &category, &amountStr, &dateStr, &recurring); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		date, err := payroll.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("bad expense date %q: %w", dateStr, err)
		}
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("bad expense amount %q: %w", amountStr, err)
		}
		expenses = append(expenses, payroll.Expense{
			ID:        payroll.ExpenseID(id),
			Category:  category,
			Amount:    amount,
			Date:      date,
			Recurring: recurring == 1,
		})
	}
	return expenses, rows.Err()
}

// =============================================================================
// SETTINGS
// =============================================================================

func (s *Store) GetSettings(ctx context.Context) (payroll.Settings, error) {
	var (
		currency               string
		showAnnual, weekMonday int
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT currency, show_annual_projection, week_starts_monday
		FROM settings WHERE id=1`).Scan(&currency, &showAnnual, &weekMonday)
	if err != nil {
		return payroll.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return payroll.Settings{
		Currency:             currency,
		ShowAnnualProjection: showAnnual == 1,
		WeekStartsMonday:     weekMonday == 1,
	}, nil
}

func (s *Store) UpdateSettings(ctx context.Context, settings payroll.Settings) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE settings SET currency=?, show_annual_projection=?, week_starts_monday=? WHERE id=1`,
		settings.Currency, boolToInt(settings.ShowAnnualProjection), boolToInt(settings.WeekStartsMonday))
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (payroll.Job, error) {
	var (
		id, name, rateStr, rule, multStr, diffType, diffStr string
		active                                              int
	)
	if err := row.Scan(&id, &name, &rateStr, &rule, &multStr, &diffType, &diffStr, &active); err != nil {
		return payroll.Job{}, err
	}
	rate, err := decimal.NewFromString(rateStr)
	if err != nil {
		return payroll.Job{}, fmt.Errorf("bad base_rate %q: %w", rateStr, err)
	}
	mult, err := decimal.NewFromString(multStr)
	if err != nil {
		return payroll.Job{}, fmt.Errorf("bad ot_multiplier %q: %w", multStr, err)
	}
	diff, err := decimal.NewFromString(diffStr)
	if err != nil {
		return payroll.Job{}, fmt.Errorf("bad diff_value %q: %w", diffStr, err)
	}
	return payroll.Job{
		ID:           payroll.JobID(id),
		Name:         name,
		BaseRate:     rate,
		OvertimeRule: payroll.OvertimeRule(rule),
		Multiplier:   mult,
		DiffType:     payroll.DifferentialType(diffType),
		DiffValue:    diff,
		Active:       active == 1,
	}, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return payroll.ErrNotFound
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
