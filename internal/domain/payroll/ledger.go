package payroll

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Ledger is the append-only collection of finalized pay runs. Records get
// their ID and processed date here; once appended they are immutable.
type Ledger struct {
	store LedgerStoreAPI
}

func NewLedger(store LedgerStoreAPI) *Ledger {
	return &Ledger{store: store}
}

// Append finalizes the record: it assigns a fresh ID and, when unset, the
// processed date, then persists it. The stored record is returned.
func (l *Ledger) Append(ctx context.Context, rec Record) (*Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.ProcessedDate.IsZero() {
		rec.ProcessedDate = time.Now().UTC()
	}
	if err := l.store.Append(ctx, rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (l *Ledger) Get(ctx context.Context, id string) (*Record, error) {
	return l.store.Get(ctx, id)
}

// List returns all records in append order.
func (l *Ledger) List(ctx context.Context) ([]Record, error) {
	records, err := l.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// TotalNetPay sums net pay across every record; zero records sum to zero.
func (l *Ledger) TotalNetPay(ctx context.Context) (float64, error) {
	return l.store.TotalNet(ctx)
}
