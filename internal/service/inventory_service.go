package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tahmidr/pharmatrack/internal/domain/medicine"
	"github.com/tahmidr/pharmatrack/pkg/metrics"
)

type InventoryService struct {
	repo    medicine.Repository
	metrics *metrics.Collector
	log     *zap.Logger
}

func NewInventoryService(repo medicine.Repository, collector *metrics.Collector, log *zap.Logger) *InventoryService {
	return &InventoryService{repo: repo, metrics: collector, log: log}
}

func (s *InventoryService) AddMedicine(ctx context.Context, cmd *medicine.AddMedicineCommand) (*medicine.Medicine, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	m := &medicine.Medicine{
		ID:         strings.TrimSpace(cmd.ID),
		Name:       strings.TrimSpace(cmd.Name),
		UnitPrice:  cmd.UnitPrice,
		Quantity:   cmd.Quantity,
		ExpiryDate: cmd.ExpiryDate,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.metrics.MedicinesAddedTotal.Inc()
	s.metrics.InventorySize.Inc()

	s.log.Info("medicine added",
		zap.String("medicine_id", m.ID),
		zap.String("name", m.Name),
		zap.Int("quantity", m.Quantity),
	)

	return m, nil
}

// UpdateQuantity replaces the quantity on hand. Negative values are
// rejected by the repository and leave the prior quantity unchanged.
func (s *InventoryService) UpdateQuantity(ctx context.Context, id string, quantity int) (*medicine.Medicine, error) {
	updated, err := s.repo.UpdateQuantity(ctx, id, quantity)
	if err != nil {
		return nil, err
	}

	s.log.Info("medicine quantity updated",
		zap.String("medicine_id", id),
		zap.Int("quantity", quantity),
	)

	return updated, nil
}

func (s *InventoryService) RemoveMedicine(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.metrics.MedicinesRemovedTotal.Inc()
	s.metrics.InventorySize.Dec()

	s.log.Info("medicine removed", zap.String("medicine_id", id))
	return nil
}

func (s *InventoryService) FindByID(ctx context.Context, id string) (*medicine.Medicine, error) {
	return s.repo.GetByID(ctx, id)
}

// FindByName returns every entry matching the name, case-insensitively.
// Name is not a unique key, so zero, one, or many hits are all normal.
func (s *InventoryService) FindByName(ctx context.Context, name string) ([]*medicine.Medicine, error) {
	if strings.TrimSpace(name) == "" {
		return nil, medicine.ErrInvalidName
	}
	return s.repo.FindByName(ctx, strings.TrimSpace(name))
}

func (s *InventoryService) ListInventory(ctx context.Context) ([]*medicine.Medicine, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing inventory: %w", err)
	}
	return list, nil
}
