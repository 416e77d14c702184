package delivery

import (
	"context"
	"fmt"
	"prep-scheduler/entities"
	"prep-scheduler/pkg/inventory"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	DeliveryRepository interface {
		GetConfirmed(ctx context.Context, day string) ([]*entities.DeliveryPlan, error)
		PendingTaskDescriptions(ctx context.Context, weekday string) ([]string, error)
		// ConfirmPlan upserts the confirmed plan rows and draws the quantities
		// from inventory in a single transaction.
		ConfirmPlan(ctx context.Context, plans []*entities.DeliveryPlan) error
	}

	deliveryRepository struct {
		db                  *gorm.DB
		inventoryRepository inventory.InventoryRepository
	}
)

func NewDeliveryRepository(db *gorm.DB, inventoryRepository inventory.InventoryRepository) DeliveryRepository {
	return &deliveryRepository{
		db:                  db,
		inventoryRepository: inventoryRepository,
	}
}

func (r *deliveryRepository) GetConfirmed(ctx context.Context, day string) ([]*entities.DeliveryPlan, error) {
	var plans []*entities.DeliveryPlan
	if err := r.db.WithContext(ctx).
		Where("day = ? AND confirmed = ?", day, true).
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *deliveryRepository) PendingTaskDescriptions(ctx context.Context, weekday string) ([]string, error) {
	var descriptions []string
	if err := r.db.WithContext(ctx).
		Model(&entities.ScheduleTask{}).
		Where("weekday = ? AND done = ?", weekday, false).
		Pluck("task", &descriptions).Error; err != nil {
		return nil, err
	}
	return descriptions, nil
}

func (r *deliveryRepository) ConfirmPlan(ctx context.Context, plans []*entities.DeliveryPlan) error {
	if len(plans) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "day"}, {Name: "item"}},
			DoUpdates: clause.AssignmentColumns([]string{"planned_qty", "confirmed", "updated_at"}),
		}).Create(&plans).Error; err != nil {
			return fmt.Errorf("upsert delivery plans: %w", err)
		}

		inv := r.inventoryRepository.WithTx(tx)
		for _, p := range plans {
			if err := inv.AddQty(ctx, p.Item, -p.PlannedQty); err != nil {
				return fmt.Errorf("draw %s from inventory: %w", p.Item, err)
			}
		}
		return nil
	})
}
