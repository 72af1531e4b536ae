package payroll

import "context"

// LedgerStoreAPI persists finalized records. The contract is append-only:
// no implementation may expose mutation or deletion of stored records.
type LedgerStoreAPI interface {
	Append(ctx context.Context, rec Record) error
	Get(ctx context.Context, id string) (*Record, error)
	List(ctx context.Context) ([]Record, error)
	TotalNet(ctx context.Context) (float64, error)
}
