package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/tahmidr/pharmatrack/internal/domain/medicine"
	"github.com/tahmidr/pharmatrack/pkg/metrics"
)

type ExpiredItem struct {
	ID   string
	Name string
}

// ExpiryReport is what the scanner emits once per tick. Expired is empty
// (not nil-checked by consumers) when nothing has expired.
type ExpiryReport struct {
	GeneratedAt time.Time
	Expired     []ExpiredItem
}

// ReportSink receives each tick's report. Implementations must not
// block for long; the scanner calls them synchronously between ticks.
type ReportSink interface {
	Publish(report ExpiryReport)
}

// ExpiryScanner periodically takes a read-only pass over the catalogue
// and reports expired entries. It never mutates the catalogue and holds
// no lock during the inter-tick wait: each pass works on a snapshot.
type ExpiryScanner struct {
	repo     medicine.Repository
	sinks    []ReportSink
	interval time.Duration
	metrics  *metrics.Collector
	log      *zap.Logger
	tracer   trace.Tracer

	stop chan struct{}
	done chan struct{}
}

func NewExpiryScanner(
	repo medicine.Repository,
	interval time.Duration,
	sinks []ReportSink,
	collector *metrics.Collector,
	log *zap.Logger,
) *ExpiryScanner {
	return &ExpiryScanner{
		repo:     repo,
		sinks:    sinks,
		interval: interval,
		metrics:  collector,
		log:      log,
		tracer:   otel.Tracer("pharmatrack/expiry"),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the scan loop. Call Stop to shut it down.
func (s *ExpiryScanner) Start() {
	go s.loop()
}

// Stop signals the loop and waits for the in-flight tick, if any, to
// finish.
func (s *ExpiryScanner) Stop() {
	close(s.stop)
	select {
	case <-s.done:
	case <-time.After(5 * time.Second):
		s.log.Warn("expiry scanner shutdown timed out")
	}
}

func (s *ExpiryScanner) loop() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick wraps one scan so an unexpected fault is logged and the loop
// keeps scheduling future passes.
func (s *ExpiryScanner) tick() {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("expiry scan panicked", zap.Any("panic", r))
		}
	}()

	report, err := s.Scan(context.Background(), time.Now())
	if err != nil {
		s.log.Error("expiry scan failed", zap.Error(err))
		return
	}

	for _, sink := range s.sinks {
		sink.Publish(report)
	}
}

// Scan evaluates every catalogue entry against asOf and returns the
// report. Exported so a pass can also be run on demand.
func (s *ExpiryScanner) Scan(ctx context.Context, asOf time.Time) (ExpiryReport, error) {
	ctx, span := s.tracer.Start(ctx, "expiry.scan")
	defer span.End()

	start := time.Now()

	entries, err := s.repo.List(ctx)
	if err != nil {
		return ExpiryReport{}, err
	}

	report := ExpiryReport{
		GeneratedAt: asOf,
		Expired:     []ExpiredItem{},
	}
	for _, m := range entries {
		if m.IsExpired(asOf) {
			report.Expired = append(report.Expired, ExpiredItem{ID: m.ID, Name: m.Name})
		}
	}

	s.metrics.ScansTotal.Inc()
	s.metrics.ScanDuration.Observe(time.Since(start).Seconds())
	s.metrics.ExpiredItemsGauge.Set(float64(len(report.Expired)))
	span.SetAttributes(
		attribute.Int("scanned", len(entries)),
		attribute.Int("expired", len(report.Expired)),
	)

	if len(report.Expired) > 0 {
		s.log.Warn("expired medicines found", zap.Int("count", len(report.Expired)))
	}

	return report, nil
}
