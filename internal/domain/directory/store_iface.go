package directory

import "context"

// StoreAPI is the roster persistence contract. List must return employees
// in insertion order; Replace keeps the employee at its original position.
type StoreAPI interface {
	Insert(ctx context.Context, emp Employee) error
	Get(ctx context.Context, id string) (*Employee, error)
	Replace(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Employee, error)
}
