// Package store provides payroll.Store implementations.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/warp/shiftsavvy/payroll"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu       sync.RWMutex
	jobs     map[payroll.JobID]payroll.Job
	shifts   map[payroll.ShiftID]payroll.Shift
	expenses map[payroll.ExpenseID]payroll.Expense
	settings payroll.Settings
}

func NewMemory() *Memory {
	return &Memory{
		jobs:     make(map[payroll.JobID]payroll.Job),
		shifts:   make(map[payroll.ShiftID]payroll.Shift),
		expenses: make(map[payroll.ExpenseID]payroll.Expense),
		settings: payroll.DefaultSettings(),
	}
}

func (m *Memory) CreateJob(_ context.Context, j payroll.Job) (payroll.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if j.ID == "" {
		j.ID = payroll.JobID(uuid.NewString())
	}
	m.jobs[j.ID] = j
	return j, nil
}

func (m *Memory) UpdateJob(_ context.Context, j payroll.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.jobs[j.ID]; !ok {
		return payroll.ErrNotFound
	}
	m.jobs[j.ID] = j
	return nil
}

func (m *Memory) DeleteJob(_ context.Context, id payroll.JobID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.jobs[id]; !ok {
		return payroll.ErrNotFound
	}
	delete(m.jobs, id)
	// Cascade, matching the sqlite foreign key behavior.
	for sid, s := range m.shifts {
		if s.JobID == id {
			delete(m.shifts, sid)
		}
	}
	return nil
}

func (m *Memory) GetJob(_ context.Context, id payroll.JobID) (*payroll.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	j, ok := m.jobs[id]
	if !ok {
		return nil, nil
	}
	return &j, nil
}

func (m *Memory) ListJobs(_ context.Context, activeOnly bool) ([]payroll.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var jobs []payroll.Job
	for _, j := range m.jobs {
		if activeOnly && !j.Active {
			continue
		}
		jobs = append(jobs, j)
	}
	sort.Slice(jobs, func(a, b int) bool {
		if jobs[a].Name != jobs[b].Name {
			return jobs[a].Name < jobs[b].Name
		}
		return jobs[a].ID < jobs[b].ID
	})
	return jobs, nil
}

func (m *Memory) CreateShift(_ context.Context, s payroll.Shift) (payroll.Shift, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.jobs[s.JobID]; !ok {
		return payroll.Shift{}, payroll.ErrNotFound
	}
	if s.ID == "" {
		s.ID = payroll.ShiftID(uuid.NewString())
	}
	m.shifts[s.ID] = s
	return s, nil
}

func (m *Memory) DeleteShift(_ context.Context, id payroll.ShiftID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.shifts[id]; !ok {
		return payroll.ErrNotFound
	}
	delete(m.shifts, id)
	return nil
}

func (m *Memory) ListShifts(_ context.Context) ([]payroll.Shift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var shifts []payroll.Shift
	for _, s := range m.shifts {
		shifts = append(shifts, s)
	}
	sort.Slice(shifts, func(a, b int) bool {
		if !shifts[a].Date.Equal(shifts[b].Date) {
			return shifts[a].Date.Before(shifts[b].Date)
		}
		return shifts[a].ID < shifts[b].ID
	})
	return shifts, nil
}

func (m *Memory) CreateExpense(_ context.Context, e payroll.Expense) (payroll.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.ID == "" {
		e.ID = payroll.ExpenseID(uuid.NewString())
	}
	m.expenses[e.ID] = e
	return e, nil
}

func (m *Memory) DeleteExpense(_ context.Context, id payroll.ExpenseID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.expenses[id]; !ok {
		return payroll.ErrNotFound
	}
	delete(m.expenses, id)
	return nil
}

func (m *Memory) ListExpenses(_ context.Context) ([]payroll.Expense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var expenses []payroll.Expense
	for _, e := range m.expenses {
		expenses = append(expenses, e)
	}
	sort.Slice(expenses, func(a, b int) bool {
		if !expenses[a].Date.Equal(expenses[b].Date) {
			return expenses[a].Date.Before(expenses[b].Date)
		}
		return expenses[a].ID < expenses[b].ID
	})
	return expenses, nil
}

func (m *Memory) GetSettings(_ context.Context) (payroll.Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings, nil
}

func (m *Memory) UpdateSettings(_ context.Context, s payroll.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = s
	return nil
}
