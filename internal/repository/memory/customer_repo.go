package memory

import (
	"context"
	"sync"
	"time"

	"github.com/tahmidr/pharmatrack/internal/domain/customer"
)

// CustomerRepository is the roster plus append-only purchase ledger.
// Histories are stored as value slices; History hands out a copy so a
// caller can never edit a recorded purchase in place.
type CustomerRepository struct {
	mu        sync.RWMutex
	byID      map[string]*customer.Customer
	histories map[string][]customer.Purchase
	ordering  []string
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		byID:      make(map[string]*customer.Customer),
		histories: make(map[string][]customer.Purchase),
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[c.ID]; ok {
		return customer.ErrDuplicateID
	}

	entry := *c
	entry.CreatedAt = time.Now()
	r.byID[c.ID] = &entry
	r.histories[c.ID] = nil
	r.ordering = append(r.ordering, c.ID)
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.byID[id]
	if !ok {
		return nil, customer.ErrNotFound
	}
	cp := *entry
	return &cp, nil
}

func (r *CustomerRepository) RecordPurchase(ctx context.Context, customerID string, p customer.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[customerID]; !ok {
		return customer.ErrNotFound
	}
	r.histories[customerID] = append(r.histories[customerID], p)
	return nil
}

func (r *CustomerRepository) History(ctx context.Context, customerID string) ([]customer.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.byID[customerID]; !ok {
		return nil, customer.ErrNotFound
	}
	history := r.histories[customerID]
	out := make([]customer.Purchase, len(history))
	copy(out, history)
	return out, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]*customer.Customer, 0, len(r.ordering))
	for _, id := range r.ordering {
		cp := *r.byID[id]
		snapshot = append(snapshot, &cp)
	}
	return snapshot, nil
}
