// Package mocks provides in-memory stand-ins for the PostgreSQL stores, for
// testing the service and HTTP layers without a database.
package mocks

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gitlab.com/yelinaung/expense-tracker/internal/expense"
	"gitlab.com/yelinaung/expense-tracker/internal/models"
	"gitlab.com/yelinaung/expense-tracker/internal/repository"
)

// MemoryStore keeps users and expenses in memory. It satisfies both
// service.UserStore and service.ExpenseStore. All methods are safe for
// concurrent use; DeleteMatching is atomic with respect to other calls.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]models.User
	expenses map[uuid.UUID]models.Expense

	// Err, when set, is returned by every expense operation.
	Err error
	// DeleteCalls counts DeleteMatching invocations.
	DeleteCalls int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[uuid.UUID]models.User),
		expenses: make(map[uuid.UUID]models.Expense),
	}
}

// AddUser registers a user for email and returns it.
func (m *MemoryStore) AddUser(email string) models.User {
	m.mu.Lock()
	defer m.mu.Unlock()

	u := models.User{
		ID:        uuid.New(),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		CreatedAt: time.Now().UTC(),
	}
	m.users[u.ID] = u
	return u
}

// Seed stores e as is, bypassing validation. A missing ID is generated.
func (m *MemoryStore) Seed(e models.Expense) models.Expense {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	m.expenses[e.ID] = e
	return e
}

// GetByEmail implements service.UserStore.
func (m *MemoryStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user: %w", repository.ErrNotFound)
}

// Create implements service.ExpenseStore.
func (m *MemoryStore) Create(_ context.Context, e *models.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.users[e.UserID]; !ok {
		return fmt.Errorf("user: %w", repository.ErrNotFound)
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	m.expenses[e.ID] = *e
	return nil
}

// GetByID implements service.ExpenseStore.
func (m *MemoryStore) GetByID(_ context.Context, userID, id uuid.UUID) (*models.Expense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Err != nil {
		return nil, m.Err
	}
	e, ok := m.expenses[id]
	if !ok || e.UserID != userID {
		return nil, fmt.Errorf("expense: %w", repository.ErrNotFound)
	}
	return &e, nil
}

// ListByUser implements service.ExpenseStore, newest first.
func (m *MemoryStore) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Expense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Err != nil {
		return nil, m.Err
	}

	out := []models.Expense{}
	for _, e := range m.expenses {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b models.Expense) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID.String(), a.ID.String())
	})
	return out, nil
}

// CountMatching implements service.ExpenseStore.
func (m *MemoryStore) CountMatching(_ context.Context, userID uuid.UUID, req models.ResetRequest) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.Err != nil {
		return 0, m.Err
	}

	n := 0
	for _, e := range m.expenses {
		if e.UserID == userID && expense.Matches(e, req) {
			n++
		}
	}
	return n, nil
}

// DeleteMatching implements service.ExpenseStore.
func (m *MemoryStore) DeleteMatching(_ context.Context, userID uuid.UUID, req models.ResetRequest) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.DeleteCalls++
	if m.Err != nil {
		return 0, m.Err
	}
	if _, ok := m.users[userID]; !ok {
		return 0, fmt.Errorf("user: %w", repository.ErrNotFound)
	}

	n := 0
	for id, e := range m.expenses {
		if e.UserID == userID && expense.Matches(e, req) {
			delete(m.expenses, id)
			n++
		}
	}
	return n, nil
}

// Len returns the number of stored expenses across all users.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.expenses)
}
