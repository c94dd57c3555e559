// Package memory holds the in-process stores backing the repositories.
// All state lives for the lifetime of the process; persistence across
// restarts is explicitly out of scope.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/tahmidr/pharmatrack/internal/domain/medicine"
)

// MedicineRepository is a mutex-guarded catalogue. A single RWMutex
// covers every mutation and iteration; the expiry scanner only ever
// receives copied snapshots, so it holds no reference into the map.
type MedicineRepository struct {
	mu       sync.RWMutex
	byID     map[string]*medicine.Medicine
	ordering []string
}

func NewMedicineRepository() *MedicineRepository {
	return &MedicineRepository{
		byID: make(map[string]*medicine.Medicine),
	}
}

func (r *MedicineRepository) Create(ctx context.Context, m *medicine.Medicine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[m.ID]; ok {
		return medicine.ErrDuplicateID
	}

	now := time.Now()
	entry := *m
	entry.CreatedAt = now
	entry.UpdatedAt = now

	r.byID[m.ID] = &entry
	r.ordering = append(r.ordering, m.ID)
	return nil
}

func (r *MedicineRepository) GetByID(ctx context.Context, id string) (*medicine.Medicine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.byID[id]
	if !ok {
		return nil, medicine.ErrNotFound
	}
	cp := *entry
	return &cp, nil
}

func (r *MedicineRepository) FindByName(ctx context.Context, name string) ([]*medicine.Medicine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*medicine.Medicine
	for _, id := range r.ordering {
		entry := r.byID[id]
		if strings.EqualFold(entry.Name, name) {
			cp := *entry
			matches = append(matches, &cp)
		}
	}
	return matches, nil
}

func (r *MedicineRepository) UpdateQuantity(ctx context.Context, id string, quantity int) (*medicine.Medicine, error) {
	if quantity < 0 {
		return nil, medicine.ErrInvalidQuantity
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.byID[id]
	if !ok {
		return nil, medicine.ErrNotFound
	}

	entry.Quantity = quantity
	entry.UpdatedAt = time.Now()
	cp := *entry
	return &cp, nil
}

func (r *MedicineRepository) Decrement(ctx context.Context, id string, qty int) (*medicine.Medicine, error) {
	if qty <= 0 {
		return nil, medicine.ErrInvalidQuantity
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.byID[id]
	if !ok {
		return nil, medicine.ErrNotFound
	}
	if qty > entry.Quantity {
		return nil, medicine.ErrInsufficientStock
	}

	entry.Quantity -= qty
	entry.UpdatedAt = time.Now()
	cp := *entry
	return &cp, nil
}

func (r *MedicineRepository) Increment(ctx context.Context, id string, qty int) (*medicine.Medicine, error) {
	if qty <= 0 {
		return nil, medicine.ErrInvalidQuantity
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.byID[id]
	if !ok {
		return nil, medicine.ErrNotFound
	}

	entry.Quantity += qty
	entry.UpdatedAt = time.Now()
	cp := *entry
	return &cp, nil
}

func (r *MedicineRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return medicine.ErrNotFound
	}
	delete(r.byID, id)
	for i, existing := range r.ordering {
		if existing == id {
			r.ordering = append(r.ordering[:i], r.ordering[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MedicineRepository) List(ctx context.Context) ([]*medicine.Medicine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]*medicine.Medicine, 0, len(r.ordering))
	for _, id := range r.ordering {
		cp := *r.byID[id]
		snapshot = append(snapshot, &cp)
	}
	return snapshot, nil
}
