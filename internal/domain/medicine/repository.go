package medicine

import "context"

// Repository is the catalogue contract. Implementations must make every
// operation atomic at the granularity of one entry: no caller may
// observe a partially inserted, partially deleted, or torn record, and
// List must be safe to call while mutations are in flight.
type Repository interface {
	// Create inserts a new medicine. Returns ErrDuplicateID if the ID is taken.
	Create(ctx context.Context, m *Medicine) error

	// GetByID retrieves a medicine by its unique ID. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*Medicine, error)

	// FindByName returns every medicine whose name matches, case-insensitively.
	// Name is not a unique key; callers must handle multiple hits.
	FindByName(ctx context.Context, name string) ([]*Medicine, error)

	// UpdateQuantity replaces the quantity on hand. Returns ErrInvalidQuantity
	// for negative values (prior quantity is kept) and ErrNotFound for unknown IDs.
	UpdateQuantity(ctx context.Context, id string, quantity int) (*Medicine, error)

	// Decrement atomically subtracts qty from stock and returns a snapshot of
	// the entry after the decrement. Returns ErrInsufficientStock when qty
	// exceeds the quantity on hand, leaving the entry untouched.
	Decrement(ctx context.Context, id string, qty int) (*Medicine, error)

	// Increment atomically adds qty back to stock. Compensation path for a
	// purchase whose ledger append failed.
	Increment(ctx context.Context, id string, qty int) (*Medicine, error)

	// Delete removes the entry. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// List returns a point-in-time snapshot of the whole catalogue. The
	// returned entries are copies; mutating them does not touch the store.
	List(ctx context.Context) ([]*Medicine, error)
}
