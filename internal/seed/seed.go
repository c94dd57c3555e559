// Package seed loads the demonstration catalogue and customer roster at
// startup. There is no runtime customer registration, so the roster here
// is the full set of customers the process will ever know.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/tahmidr/pharmatrack/internal/domain/customer"
	"github.com/tahmidr/pharmatrack/internal/domain/medicine"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(fmt.Sprintf("seed: bad date %q: %v", value, err))
	}
	return t
}

var medicines = []medicine.Medicine{
	{ID: "M1", Name: "Napa", UnitPrice: 1000, Quantity: 100, ExpiryDate: date("2028-09-30")},
	{ID: "M2", Name: "Rupa", UnitPrice: 1500, Quantity: 200, ExpiryDate: date("2028-02-15")},
	{ID: "M3", Name: "Comet", UnitPrice: 1000, Quantity: 150, ExpiryDate: date("2028-10-30")},
	{ID: "M4", Name: "Reticap", UnitPrice: 1000, Quantity: 72, ExpiryDate: date("2028-12-30")},
	{ID: "M5", Name: "Osertil", UnitPrice: 1000, Quantity: 50, ExpiryDate: date("2028-10-30")},
}

var customers = []customer.Customer{
	{ID: "C1", Name: "Sayka", ContactInfo: "sayka@gmail.com"},
	{ID: "C2", Name: "Sunjida", ContactInfo: "sunjida@gmail.com"},
	{ID: "C3", Name: "Naima", ContactInfo: "naima@gmail.com"},
}

// Load inserts the sample data. Duplicate IDs are reported, not skipped:
// seeding runs exactly once against empty stores.
func Load(ctx context.Context, medicineRepo medicine.Repository, customerRepo customer.Repository) error {
	for i := range medicines {
		if err := medicineRepo.Create(ctx, &medicines[i]); err != nil {
			return fmt.Errorf("seeding medicine %s: %w", medicines[i].ID, err)
		}
	}
	for i := range customers {
		if err := customerRepo.Create(ctx, &customers[i]); err != nil {
			return fmt.Errorf("seeding customer %s: %w", customers[i].ID, err)
		}
	}
	return nil
}

// Size returns how many medicines the seed catalogue carries, for the
// inventory gauge's initial value.
func Size() int {
	return len(medicines)
}
