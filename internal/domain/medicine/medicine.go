package medicine

import (
	"strings"
	"time"
)

// Medicine is a single catalogue entry. ID is the only unique key;
// names may repeat across entries (different brands, same name).
type Medicine struct {
	ID         string
	Name       string
	UnitPrice  float64
	Quantity   int
	ExpiryDate time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsExpired reports whether the medicine's expiry date lies strictly
// before asOf. Pure; monotonic in asOf for a fixed expiry date.
func (m *Medicine) IsExpired(asOf time.Time) bool {
	return m.ExpiryDate.Before(asOf)
}

// TotalValue is the stock value at the current unit price.
func (m *Medicine) TotalValue() float64 {
	return m.UnitPrice * float64(m.Quantity)
}

type AddMedicineCommand struct {
	ID         string
	Name       string
	UnitPrice  float64
	Quantity   int
	ExpiryDate time.Time
}

// Validate checks field-level constraints before the command touches
// the catalogue. Uniqueness of ID is the repository's concern.
func (cmd *AddMedicineCommand) Validate() error {
	if strings.TrimSpace(cmd.ID) == "" {
		return ErrInvalidID
	}
	if strings.TrimSpace(cmd.Name) == "" {
		return ErrInvalidName
	}
	if cmd.UnitPrice < 0 {
		return ErrInvalidPrice
	}
	if cmd.Quantity < 0 {
		return ErrInvalidQuantity
	}
	if cmd.ExpiryDate.IsZero() {
		return ErrInvalidExpiryDate
	}
	return nil
}
