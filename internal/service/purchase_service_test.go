package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahmidr/pharmatrack/internal/domain/customer"
	"github.com/tahmidr/pharmatrack/internal/domain/medicine"
)

func TestPurchase_DecrementsStockAndRecordsLedgerEntry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.purchases.Purchase(ctx, &PurchaseCommand{
		CustomerID: "C1",
		MedicineID: "M1",
		Quantity:   30,
		PurchaseID: "P1",
	})
	require.NoError(t, err)

	assert.Equal(t, "P1", p.ID)
	assert.Equal(t, "Napa", p.MedicineName)
	assert.Equal(t, 1000.0, p.UnitPrice)
	assert.Equal(t, 30000.0, p.TotalCost)

	got, err := f.medicineRepo.GetByID(ctx, "M1")
	require.NoError(t, err)
	assert.Equal(t, 70, got.Quantity)

	history, err := f.purchases.History(ctx, "C1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 30000.0, history[0].TotalCost)
}

func TestPurchase_InsufficientStockLeavesQuantityUnchanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.purchases.Purchase(ctx, &PurchaseCommand{
		CustomerID: "C1",
		MedicineID: "M1",
		Quantity:   200,
	})
	require.ErrorIs(t, err, medicine.ErrInsufficientStock)

	got, err := f.medicineRepo.GetByID(ctx, "M1")
	require.NoError(t, err)
	assert.Equal(t, 100, got.Quantity)

	history, err := f.purchases.History(ctx, "C1")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestPurchase_NonPositiveQuantityRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, qty := range []int{0, -5} {
		_, err := f.purchases.Purchase(ctx, &PurchaseCommand{
			CustomerID: "C1",
			MedicineID: "M1",
			Quantity:   qty,
		})
		require.ErrorIs(t, err, medicine.ErrInvalidQuantity)
	}

	got, err := f.medicineRepo.GetByID(ctx, "M1")
	require.NoError(t, err)
	assert.Equal(t, 100, got.Quantity)
}

func TestPurchase_UnknownMedicine(t *testing.T) {
	f := newFixture(t)

	_, err := f.purchases.Purchase(context.Background(), &PurchaseCommand{
		CustomerID: "C1",
		MedicineID: "UNKNOWN",
		Quantity:   1,
	})
	require.ErrorIs(t, err, medicine.ErrNotFound)
}

func TestPurchase_UnknownCustomerLeavesStockUntouched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.purchases.Purchase(ctx, &PurchaseCommand{
		CustomerID: "C9",
		MedicineID: "M1",
		Quantity:   10,
	})
	require.ErrorIs(t, err, customer.ErrNotFound)

	got, err := f.medicineRepo.GetByID(ctx, "M1")
	require.NoError(t, err)
	assert.Equal(t, 100, got.Quantity)
}

func TestPurchase_RecordedTotalImmuneToLaterPriceChange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.purchases.Purchase(ctx, &PurchaseCommand{
		CustomerID: "C1",
		MedicineID: "M1",
		Quantity:   30,
	})
	require.NoError(t, err)

	// Replace the entry at a different price; history must not move.
	require.NoError(t, f.medicineRepo.Delete(ctx, "M1"))
	require.NoError(t, f.medicineRepo.Create(ctx, &medicine.Medicine{
		ID:         "M1",
		Name:       "Napa",
		UnitPrice:  9999,
		Quantity:   70,
		ExpiryDate: expiry("2028-09-30"),
	}))

	history, err := f.purchases.History(ctx, "C1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 1000.0, history[0].UnitPrice)
	assert.Equal(t, 30000.0, history[0].TotalCost)
}

func TestPurchase_GeneratesIDWhenBlank(t *testing.T) {
	f := newFixture(t)

	p, err := f.purchases.Purchase(context.Background(), &PurchaseCommand{
		CustomerID: "C1",
		MedicineID: "M1",
		Quantity:   1,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
}

func TestPurchase_UsesSuppliedTimestamp(t *testing.T) {
	f := newFixture(t)
	when := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	p, err := f.purchases.Purchase(context.Background(), &PurchaseCommand{
		CustomerID: "C1",
		MedicineID: "M1",
		Quantity:   2,
		Timestamp:  when,
	})
	require.NoError(t, err)
	assert.True(t, p.PurchasedAt.Equal(when))
}
