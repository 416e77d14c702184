package inventory

import (
	"context"
	"prep-scheduler/entities"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	InventoryRepository interface {
		WithTx(tx *gorm.DB) InventoryRepository

		GetAll(ctx context.Context) ([]*entities.InventoryLevel, error)
		SetQty(ctx context.Context, item string, qty float64) error
		SetDangerLevel(ctx context.Context, item string, level float64) error
		// AddQty applies delta floored at zero; a missing row is created from max(delta, 0).
		AddQty(ctx context.Context, item string, delta float64) error

		EnsureItems(ctx context.Context, items []string) error
		DeleteItems(ctx context.Context, items []string) (int64, error)
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{
		db: db,
	}
}

func (r *inventoryRepository) WithTx(tx *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: tx}
}

func (r *inventoryRepository) GetAll(ctx context.Context) ([]*entities.InventoryLevel, error) {
	var rows []*entities.InventoryLevel
	if err := r.db.WithContext(ctx).
		Order("item ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *inventoryRepository) SetQty(ctx context.Context, item string, qty float64) error {
	row := &entities.InventoryLevel{
		Item:        item,
		Qty:         qty,
		DangerLevel: entities.DefaultDangerLevel,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item"}},
			DoUpdates: clause.AssignmentColumns([]string{"qty", "updated_at"}),
		}).
		Create(row).Error
}

func (r *inventoryRepository) SetDangerLevel(ctx context.Context, item string, level float64) error {
	row := &entities.InventoryLevel{
		Item:        item,
		Qty:         0,
		DangerLevel: level,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item"}},
			DoUpdates: clause.AssignmentColumns([]string{"danger_level", "updated_at"}),
		}).
		Create(row).Error
}

func (r *inventoryRepository) AddQty(ctx context.Context, item string, delta float64) error {
	result := r.db.WithContext(ctx).
		Model(&entities.InventoryLevel{}).
		Where("item = ?", item).
		Updates(map[string]any{
			"qty":        gorm.Expr("CASE WHEN qty + ? < 0 THEN 0 ELSE qty + ? END", delta, delta),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	qty := delta
	if qty < 0 {
		qty = 0
	}
	return r.db.WithContext(ctx).Create(&entities.InventoryLevel{
		Item:        item,
		Qty:         qty,
		DangerLevel: entities.DefaultDangerLevel,
	}).Error
}

func (r *inventoryRepository) EnsureItems(ctx context.Context, items []string) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([]*entities.InventoryLevel, 0, len(items))
	for _, item := range items {
		rows = append(rows, &entities.InventoryLevel{
			Item:        item,
			DangerLevel: entities.DefaultDangerLevel,
		})
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

func (r *inventoryRepository) DeleteItems(ctx context.Context, items []string) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Where("item IN ?", items).
		Delete(&entities.InventoryLevel{})
	return result.RowsAffected, result.Error
}
