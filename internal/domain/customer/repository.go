package customer

import "context"

// Repository is the customer roster plus per-customer purchase ledger.
// The ledger is append-only: recorded purchases are never updated or
// removed.
type Repository interface {
	// Create registers a customer. Returns ErrDuplicateID if the ID is taken.
	Create(ctx context.Context, c *Customer) error

	// GetByID retrieves a customer by ID. Returns ErrNotFound if unknown.
	GetByID(ctx context.Context, id string) (*Customer, error)

	// RecordPurchase appends one purchase to the customer's history.
	// Returns ErrNotFound for unknown customers.
	RecordPurchase(ctx context.Context, customerID string, p Purchase) error

	// History returns the customer's purchases in insertion order.
	// Returns ErrNotFound for unknown customers.
	History(ctx context.Context, customerID string) ([]Purchase, error)

	// List returns a snapshot of all registered customers.
	List(ctx context.Context) ([]*Customer, error)
}
