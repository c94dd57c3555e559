package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tahmidr/pharmatrack/internal/cli"
	"github.com/tahmidr/pharmatrack/internal/config"
	"github.com/tahmidr/pharmatrack/internal/domain"
	"github.com/tahmidr/pharmatrack/internal/repository/memory"
	"github.com/tahmidr/pharmatrack/internal/seed"
	"github.com/tahmidr/pharmatrack/internal/service"
	"github.com/tahmidr/pharmatrack/pkg/logger"
	"github.com/tahmidr/pharmatrack/pkg/metrics"
	"github.com/tahmidr/pharmatrack/pkg/tracer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Optional; absence of a .env file is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync()

	tp, err := tracer.Init(cfg.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Warn("tracer shutdown", zap.Error(err))
		}
	}()

	collector := metrics.NewCollector(cfg.App.Name)
	if cfg.Metrics.Enabled {
		go func() {
			log.Info("metrics listener starting", zap.String("addr", cfg.Metrics.ListenAddr))
			if err := http.ListenAndServe(cfg.Metrics.ListenAddr, metrics.MetricsHandler()); err != nil {
				log.Error("metrics listener failed", zap.Error(err))
			}
		}()
	}

	medicineRepo := memory.NewMedicineRepository()
	customerRepo := memory.NewCustomerRepository()

	ctx := context.Background()
	if err := seed.Load(ctx, medicineRepo, customerRepo); err != nil {
		return err
	}
	collector.InventorySize.Set(float64(seed.Size()))

	manager := domain.Manager{
		ID:          cfg.Auth.ManagerID,
		Name:        cfg.Auth.ManagerName,
		ContactInfo: cfg.Auth.ManagerContact,
	}

	authSvc, err := service.NewAuthService(manager, cfg.Auth.Password, collector, log)
	if err != nil {
		return err
	}
	inventorySvc := service.NewInventoryService(medicineRepo, collector, log)
	purchaseSvc := service.NewPurchaseService(medicineRepo, customerRepo, collector, log)

	scanner := service.NewExpiryScanner(
		medicineRepo,
		cfg.Scanner.Interval,
		[]service.ReportSink{cli.NewConsoleSink(os.Stdout)},
		collector,
		log,
	)
	scanner.Start()
	defer scanner.Stop()

	app := cli.New(os.Stdin, os.Stdout, inventorySvc, purchaseSvc, authSvc, log)
	return app.Run(ctx)
}
