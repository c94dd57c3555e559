package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/tahmidr/pharmatrack/internal/domain/customer"
	"github.com/tahmidr/pharmatrack/internal/domain/medicine"
	"github.com/tahmidr/pharmatrack/pkg/metrics"
)

// PurchaseService executes a sale as one logical transaction across the
// catalogue and the customer ledger: either stock is decremented and the
// purchase recorded, or neither happens.
type PurchaseService struct {
	medicineRepo medicine.Repository
	customerRepo customer.Repository
	metrics      *metrics.Collector
	log          *zap.Logger
	tracer       trace.Tracer
}

func NewPurchaseService(
	medicineRepo medicine.Repository,
	customerRepo customer.Repository,
	collector *metrics.Collector,
	log *zap.Logger,
) *PurchaseService {
	return &PurchaseService{
		medicineRepo: medicineRepo,
		customerRepo: customerRepo,
		metrics:      collector,
		log:          log,
		tracer:       otel.Tracer("pharmatrack/purchase"),
	}
}

type PurchaseCommand struct {
	CustomerID string
	MedicineID string
	Quantity   int
	// PurchaseID is caller-supplied; a UUID is generated when blank.
	PurchaseID string
	Timestamp  time.Time
}

func (s *PurchaseService) Purchase(ctx context.Context, cmd *PurchaseCommand) (*customer.Purchase, error) {
	ctx, span := s.tracer.Start(ctx, "purchase",
		trace.WithAttributes(
			attribute.String("customer.id", cmd.CustomerID),
			attribute.String("medicine.id", cmd.MedicineID),
			attribute.Int("quantity", cmd.Quantity),
		),
	)
	defer span.End()

	if cmd.Quantity <= 0 {
		s.metrics.PurchaseFailures.WithLabelValues("invalid_quantity").Inc()
		return nil, medicine.ErrInvalidQuantity
	}

	// Resolve the customer up front so the only step after the stock
	// decrement is an append that cannot fail for a known customer.
	if _, err := s.customerRepo.GetByID(ctx, cmd.CustomerID); err != nil {
		s.metrics.PurchaseFailures.WithLabelValues("unknown_customer").Inc()
		return nil, err
	}

	snapshot, err := s.medicineRepo.Decrement(ctx, cmd.MedicineID, cmd.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, medicine.ErrNotFound):
			s.metrics.PurchaseFailures.WithLabelValues("unknown_medicine").Inc()
		case errors.Is(err, medicine.ErrInsufficientStock):
			s.metrics.PurchaseFailures.WithLabelValues("insufficient_stock").Inc()
		}
		return nil, err
	}

	when := cmd.Timestamp
	if when.IsZero() {
		when = time.Now()
	}

	purchaseID := strings.TrimSpace(cmd.PurchaseID)
	if purchaseID == "" {
		purchaseID = uuid.NewString()
	}

	p := customer.Purchase{
		ID:           purchaseID,
		MedicineID:   snapshot.ID,
		MedicineName: snapshot.Name,
		Quantity:     cmd.Quantity,
		UnitPrice:    snapshot.UnitPrice,
		TotalCost:    snapshot.UnitPrice * float64(cmd.Quantity),
		PurchasedAt:  when,
	}

	if err := s.customerRepo.RecordPurchase(ctx, cmd.CustomerID, p); err != nil {
		// Restock so no observer sees a decrement without a record.
		if _, restockErr := s.medicineRepo.Increment(ctx, cmd.MedicineID, cmd.Quantity); restockErr != nil {
			s.log.Error("failed to restock after ledger append failure",
				zap.String("medicine_id", cmd.MedicineID),
				zap.Int("quantity", cmd.Quantity),
				zap.Error(restockErr),
			)
		}
		s.metrics.PurchaseFailures.WithLabelValues("ledger_append").Inc()
		return nil, fmt.Errorf("recording purchase: %w", err)
	}

	s.metrics.PurchasesTotal.Inc()
	s.metrics.RevenueTotal.Add(p.TotalCost)

	s.log.Info("purchase completed",
		zap.String("purchase_id", p.ID),
		zap.String("customer_id", cmd.CustomerID),
		zap.String("medicine_id", p.MedicineID),
		zap.Int("quantity", p.Quantity),
		zap.Float64("total_cost", p.TotalCost),
	)

	return &p, nil
}

// History returns the customer's purchases in insertion order.
func (s *PurchaseService) History(ctx context.Context, customerID string) ([]customer.Purchase, error) {
	return s.customerRepo.History(ctx, customerID)
}
