package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tahmidr/pharmatrack/internal/domain/customer"
	"github.com/tahmidr/pharmatrack/internal/domain/medicine"
	"github.com/tahmidr/pharmatrack/internal/repository/memory"
	"github.com/tahmidr/pharmatrack/pkg/metrics"
)

// promauto registers into the default registry, so the collector must be
// built exactly once per test binary.
var testMetrics = metrics.NewCollector("pharmatrack_test")

func expiry(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

type fixture struct {
	medicineRepo *memory.MedicineRepository
	customerRepo *memory.CustomerRepository
	inventory    *InventoryService
	purchases    *PurchaseService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	medicineRepo := memory.NewMedicineRepository()
	customerRepo := memory.NewCustomerRepository()
	log := zap.NewNop()

	ctx := context.Background()
	require.NoError(t, medicineRepo.Create(ctx, &medicine.Medicine{
		ID:         "M1",
		Name:       "Napa",
		UnitPrice:  1000,
		Quantity:   100,
		ExpiryDate: expiry("2028-09-30"),
	}))
	require.NoError(t, customerRepo.Create(ctx, &customer.Customer{
		ID:          "C1",
		Name:        "Sayka",
		ContactInfo: "sayka@gmail.com",
	}))

	return &fixture{
		medicineRepo: medicineRepo,
		customerRepo: customerRepo,
		inventory:    NewInventoryService(medicineRepo, testMetrics, log),
		purchases:    NewPurchaseService(medicineRepo, customerRepo, testMetrics, log),
	}
}
