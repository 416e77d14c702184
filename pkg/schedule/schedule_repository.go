package schedule

import (
	"context"
	"fmt"
	"prep-scheduler/entities"
	"prep-scheduler/pkg/inventory"

	"gorm.io/gorm"
)

type (
	ScheduleRepository interface {
		ListTasks(ctx context.Context) ([]*entities.ScheduleTask, error)
		ListPending(ctx context.Context) ([]*entities.ScheduleTask, error)
		GetTaskByID(ctx context.Context, id string) (*entities.ScheduleTask, error)
		CreateTasks(ctx context.Context, tasks []*entities.ScheduleTask) error
		MaxPosition(ctx context.Context) (int64, error)
		UpdateTask(ctx context.Context, id string, updates map[string]any) error

		// CloseTask removes the task, applies its inventory effect and records
		// the event in one transaction.
		CloseTask(ctx context.Context, id string, action string, effect func(*entities.ScheduleTask) map[string]float64) (*entities.ScheduleTask, map[string]float64, error)
		ListTaskEvents(ctx context.Context, limit int) ([]*entities.TaskEvent, error)
	}

	scheduleRepository struct {
		db                  *gorm.DB
		inventoryRepository inventory.InventoryRepository
	}
)

func NewScheduleRepository(db *gorm.DB, inventoryRepository inventory.InventoryRepository) ScheduleRepository {
	return &scheduleRepository{
		db:                  db,
		inventoryRepository: inventoryRepository,
	}
}

func (r *scheduleRepository) ListTasks(ctx context.Context) ([]*entities.ScheduleTask, error) {
	var tasks []*entities.ScheduleTask
	if err := r.db.WithContext(ctx).
		Order("position ASC").
		Order("created_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *scheduleRepository) ListPending(ctx context.Context) ([]*entities.ScheduleTask, error) {
	var tasks []*entities.ScheduleTask
	if err := r.db.WithContext(ctx).
		Where("done = ?", false).
		Order("position ASC").
		Order("created_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *scheduleRepository) GetTaskByID(ctx context.Context, id string) (*entities.ScheduleTask, error) {
	var task entities.ScheduleTask
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *scheduleRepository) CreateTasks(ctx context.Context, tasks []*entities.ScheduleTask) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&tasks).Error
}

func (r *scheduleRepository) MaxPosition(ctx context.Context) (int64, error) {
	var pos int64
	if err := r.db.WithContext(ctx).
		Model(&entities.ScheduleTask{}).
		Select("COALESCE(MAX(position), 0)").
		Row().Scan(&pos); err != nil {
		return 0, err
	}
	return pos, nil
}

func (r *scheduleRepository) UpdateTask(ctx context.Context, id string, updates map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&entities.ScheduleTask{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *scheduleRepository) CloseTask(
	ctx context.Context,
	id string,
	action string,
	effect func(*entities.ScheduleTask) map[string]float64,
) (*entities.ScheduleTask, map[string]float64, error) {
	var (
		task    entities.ScheduleTask
		applied map[string]float64
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&task).Error; err != nil {
			return err
		}

		applied = map[string]float64{}
		if effect != nil {
			applied = effect(&task)
		}
		inv := r.inventoryRepository.WithTx(tx)
		for item, delta := range applied {
			if err := inv.AddQty(ctx, item, delta); err != nil {
				return fmt.Errorf("apply %s: %w", item, err)
			}
		}

		if err := tx.Delete(&task).Error; err != nil {
			return err
		}
		return tx.Create(&entities.TaskEvent{
			TaskID:  task.ID,
			Weekday: task.Weekday,
			Task:    task.Task,
			Item:    task.Item,
			Qty:     task.Qty,
			Action:  action,
		}).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &task, applied, nil
}

func (r *scheduleRepository) ListTaskEvents(ctx context.Context, limit int) ([]*entities.TaskEvent, error) {
	var events []*entities.TaskEvent
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
