package inventory

import (
	"context"
	"fmt"
	"prep-scheduler/domain"
	"prep-scheduler/pkg/planner"
)

type (
	InventoryService interface {
		GetInventory(ctx context.Context) (domain.InventoryResponse, error)
		UpdateQuantities(ctx context.Context, updates map[string]float64) (domain.InventoryResponse, error)
		UpdateDangerLevels(ctx context.Context, levels map[string]float64) (domain.InventoryResponse, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
	}
)

func NewInventoryService(inventoryRepository InventoryRepository) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
	}
}

func (s *inventoryService) GetInventory(ctx context.Context) (domain.InventoryResponse, error) {
	rows, err := s.inventoryRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make(domain.InventoryResponse, len(rows))
	for _, row := range rows {
		result[row.Item] = domain.InventoryEntry{
			Qty:         row.Qty,
			DangerLevel: row.DangerLevel,
		}
	}
	return result, nil
}

// CheckItems rejects composite task names, which never hold stock of their own.
func CheckItems(items map[string]float64) error {
	for item := range items {
		if planner.IsComposite(item) {
			return fmt.Errorf("%w: %s", domain.ErrCompositeItem, item)
		}
	}
	return nil
}

func (s *inventoryService) UpdateQuantities(ctx context.Context, updates map[string]float64) (domain.InventoryResponse, error) {
	if len(updates) == 0 {
		return nil, domain.ErrEmptyPayload
	}
	if err := CheckItems(updates); err != nil {
		return nil, err
	}

	for item, qty := range updates {
		if err := s.inventoryRepository.SetQty(ctx, item, planner.ClampQty(qty)); err != nil {
			return nil, fmt.Errorf("set qty of %s: %w", item, err)
		}
	}
	return s.GetInventory(ctx)
}

func (s *inventoryService) UpdateDangerLevels(ctx context.Context, levels map[string]float64) (domain.InventoryResponse, error) {
	if len(levels) == 0 {
		return nil, domain.ErrEmptyPayload
	}
	if err := CheckItems(levels); err != nil {
		return nil, err
	}

	for item, level := range levels {
		if err := s.inventoryRepository.SetDangerLevel(ctx, item, level); err != nil {
			return nil, fmt.Errorf("set danger level of %s: %w", item, err)
		}
	}
	return s.GetInventory(ctx)
}
