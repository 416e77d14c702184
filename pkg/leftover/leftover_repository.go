package leftover

import (
	"context"
	"prep-scheduler/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	LeftoverRepository interface {
		GetByDay(ctx context.Context, day string) ([]*entities.LeftoverRecord, error)
		Upsert(ctx context.Context, records []*entities.LeftoverRecord) error
	}

	leftoverRepository struct {
		db *gorm.DB
	}
)

func NewLeftoverRepository(db *gorm.DB) LeftoverRepository {
	return &leftoverRepository{
		db: db,
	}
}

func (r *leftoverRepository) GetByDay(ctx context.Context, day string) ([]*entities.LeftoverRecord, error) {
	var records []*entities.LeftoverRecord
	if err := r.db.WithContext(ctx).
		Where("day = ?", day).
		Order("item ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *leftoverRepository) Upsert(ctx context.Context, records []*entities.LeftoverRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "day"}, {Name: "item"}},
			DoUpdates: clause.AssignmentColumns([]string{"qty", "updated_at"}),
		}).
		Create(&records).Error
}
