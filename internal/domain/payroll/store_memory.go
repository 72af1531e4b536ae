package payroll

import (
	"context"
	"sync"
)

type MemoryLedgerStore struct {
	mu      sync.Mutex
	records []Record
}

func NewMemoryLedgerStore() *MemoryLedgerStore {
	return &MemoryLedgerStore{}
}

func (m *MemoryLedgerStore) Append(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = append(m.records, rec)
	return nil
}

func (m *MemoryLedgerStore) Get(_ context.Context, id string) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rec := range m.records {
		if rec.ID == id {
			out := rec
			return &out, nil
		}
	}
	return nil, ErrRecordNotFound
}

func (m *MemoryLedgerStore) List(_ context.Context) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *MemoryLedgerStore) TotalNet(_ context.Context) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var total float64
	for _, rec := range m.records {
		total += rec.NetPay
	}
	return total, nil
}

var _ LedgerStoreAPI = (*MemoryLedgerStore)(nil)
