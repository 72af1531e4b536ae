package directory

import (
	"context"
	"sync"
)

// MemoryStore keeps the roster in an ordered slice guarded by a mutex.
// It is the default store when no database is configured.
type MemoryStore struct {
	mu        sync.Mutex
	employees []Employee
	index     map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{index: make(map[string]int)}
}

func (m *MemoryStore) Insert(_ context.Context, emp Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.index[emp.ID] = len(m.employees)
	m.employees = append(m.employees, emp)
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pos, ok := m.index[id]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	emp := m.employees[pos]
	return &emp, nil
}

func (m *MemoryStore) Replace(_ context.Context, emp Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	pos, ok := m.index[emp.ID]
	if !ok {
		return ErrEmployeeNotFound
	}
	m.employees[pos] = emp
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	pos, ok := m.index[id]
	if !ok {
		return ErrEmployeeNotFound
	}
	m.employees = append(m.employees[:pos], m.employees[pos+1:]...)
	delete(m.index, id)
	for i := pos; i < len(m.employees); i++ {
		m.index[m.employees[i].ID] = i
	}
	return nil
}

func (m *MemoryStore) List(_ context.Context) ([]Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Employee, len(m.employees))
	copy(out, m.employees)
	return out, nil
}

var _ StoreAPI = (*MemoryStore)(nil)
