package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tahmidr/pharmatrack/internal/domain/medicine"
	"github.com/tahmidr/pharmatrack/internal/repository/memory"
)

type captureSink struct {
	reports chan ExpiryReport
}

func (s *captureSink) Publish(report ExpiryReport) {
	select {
	case s.reports <- report:
	default:
	}
}

func TestScan_ReportsOnlyEntriesPastExpiry(t *testing.T) {
	repo := memory.NewMedicineRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &medicine.Medicine{
		ID: "M1", Name: "Napa", UnitPrice: 1000, Quantity: 100,
		ExpiryDate: expiry("2028-09-30"),
	}))
	require.NoError(t, repo.Create(ctx, &medicine.Medicine{
		ID: "M2", Name: "Rupa", UnitPrice: 1500, Quantity: 200,
		ExpiryDate: expiry("2025-02-15"),
	}))

	scanner := NewExpiryScanner(repo, time.Minute, nil, testMetrics, zap.NewNop())

	report, err := scanner.Scan(ctx, expiry("2026-01-01"))
	require.NoError(t, err)
	require.Len(t, report.Expired, 1)
	assert.Equal(t, ExpiredItem{ID: "M2", Name: "Rupa"}, report.Expired[0])

	// Before either expiry date the report is empty.
	report, err = scanner.Scan(ctx, expiry("2024-01-01"))
	require.NoError(t, err)
	assert.Empty(t, report.Expired)

	// After both, both are reported.
	report, err = scanner.Scan(ctx, expiry("2029-01-01"))
	require.NoError(t, err)
	assert.Len(t, report.Expired, 2)
}

func TestIsExpired_MonotonicInTime(t *testing.T) {
	m := &medicine.Medicine{ID: "M1", ExpiryDate: expiry("2028-09-30")}

	asOf := expiry("2028-10-01")
	require.True(t, m.IsExpired(asOf))
	for i := 0; i < 5; i++ {
		asOf = asOf.AddDate(0, 6, 0)
		assert.True(t, m.IsExpired(asOf))
	}

	assert.False(t, m.IsExpired(expiry("2028-09-30")))
	assert.False(t, m.IsExpired(expiry("2020-01-01")))
}

func TestExpiryScanner_PublishesOnEachTickAndStops(t *testing.T) {
	repo := memory.NewMedicineRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &medicine.Medicine{
		ID: "M2", Name: "Rupa", UnitPrice: 1500, Quantity: 200,
		ExpiryDate: expiry("2020-01-01"),
	}))

	sink := &captureSink{reports: make(chan ExpiryReport, 1)}
	scanner := NewExpiryScanner(repo, 10*time.Millisecond, []ReportSink{sink}, testMetrics, zap.NewNop())
	scanner.Start()

	select {
	case report := <-sink.reports:
		require.Len(t, report.Expired, 1)
		assert.Equal(t, "M2", report.Expired[0].ID)
	case <-time.After(2 * time.Second):
		t.Fatal("no report published before timeout")
	}

	scanner.Stop()
}

// The scanner must keep reading consistent snapshots while the catalogue
// is mutated underneath it.
func TestScan_ConcurrentWithMutation(t *testing.T) {
	repo := memory.NewMedicineRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &medicine.Medicine{
		ID: "M1", Name: "Napa", UnitPrice: 1000, Quantity: 100,
		ExpiryDate: expiry("2020-01-01"),
	}))

	scanner := NewExpiryScanner(repo, time.Minute, nil, testMetrics, zap.NewNop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			_, _ = repo.UpdateQuantity(ctx, "M1", i)
		}
	}()

	for i := 0; i < 100; i++ {
		report, err := scanner.Scan(ctx, time.Now())
		require.NoError(t, err)
		require.Len(t, report.Expired, 1)
	}
	<-done
}
