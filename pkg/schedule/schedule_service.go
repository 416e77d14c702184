package schedule

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"prep-scheduler/domain"
	"prep-scheduler/entities"
	"prep-scheduler/internal/utils"
	"prep-scheduler/internal/utils/export"
	"prep-scheduler/internal/utils/lock"
	"prep-scheduler/internal/utils/metrics"
	"prep-scheduler/pkg/inventory"
	"prep-scheduler/pkg/leftover"
	"prep-scheduler/pkg/planner"
	"prep-scheduler/pkg/weather"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	generateLockKey = "prep-scheduler:schedule:generate"
	historyLimit    = 200
)

type (
	ScheduleService interface {
		GetSchedule(ctx context.Context) ([]domain.ScheduleTask, error)
		Generate(ctx context.Context) ([]domain.ScheduleTask, error)
		CompleteTask(ctx context.Context, id string) (*domain.CompleteTaskResponse, error)
		DeleteTask(ctx context.Context, id string) (*domain.ScheduleTask, error)
		MoveTask(ctx context.Context, id string, weekday string) (*domain.MoveTaskResponse, error)
		UpdateTaskQty(ctx context.Context, id string, qty float64) (*domain.UpdateTaskQtyResponse, error)
		ExportSchedule(ctx context.Context) (*bytes.Buffer, error)
		ListTaskEvents(ctx context.Context) ([]domain.TaskEvent, error)
	}

	// Notifier is told about tasks created by a generation run.
	Notifier interface {
		NotifyNewTasks(ctx context.Context, tasks []domain.ScheduleTask) error
	}

	scheduleService struct {
		scheduleRepository  ScheduleRepository
		inventoryRepository inventory.InventoryRepository
		leftoverRepository  leftover.LeftoverRepository
		weatherProvider     weather.Provider
		clock               utils.Clock
		locker              lock.Locker
		metrics             *metrics.Metrics
		notifier            Notifier
	}
)

// NewScheduleService skips notifications when notifier is nil.
func NewScheduleService(
	scheduleRepository ScheduleRepository,
	inventoryRepository inventory.InventoryRepository,
	leftoverRepository leftover.LeftoverRepository,
	weatherProvider weather.Provider,
	clock utils.Clock,
	locker lock.Locker,
	m *metrics.Metrics,
	notifier Notifier,
) ScheduleService {
	return &scheduleService{
		scheduleRepository:  scheduleRepository,
		inventoryRepository: inventoryRepository,
		leftoverRepository:  leftoverRepository,
		weatherProvider:     weatherProvider,
		clock:               clock,
		locker:              locker,
		metrics:             m,
		notifier:            notifier,
	}
}

func (s *scheduleService) GetSchedule(ctx context.Context) ([]domain.ScheduleTask, error) {
	if _, err := s.Generate(ctx); err != nil {
		return nil, err
	}

	tasks, err := s.scheduleRepository.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return toScheduleTasks(tasks), nil
}

func (s *scheduleService) Generate(ctx context.Context) ([]domain.ScheduleTask, error) {
	release, err := s.locker.Obtain(ctx, generateLockKey)
	if err != nil {
		return nil, fmt.Errorf("obtain schedule lock: %w", err)
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			utils.LogError("schedule", "Generate", "release lock", nil, err)
		}
	}()

	start := time.Now()
	defer func() {
		s.metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	}()
	s.metrics.ScheduleGenerations.Inc()

	input, err := s.loadInput(ctx)
	if err != nil {
		return nil, err
	}
	result := planner.BuildSchedule(input)

	if len(result.Unplaced) > 0 {
		utils.GetLogger().WithFields(logrus.Fields{
			"module":   "schedule",
			"unplaced": result.Unplaced,
		}).Warn("no free weekday within the lookahead window")
	}
	if len(result.Tasks) == 0 {
		return nil, nil
	}

	pos, err := s.scheduleRepository.MaxPosition(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]*entities.ScheduleTask, 0, len(result.Tasks))
	for i, t := range result.Tasks {
		rows = append(rows, &entities.ScheduleTask{
			Weekday:  t.Weekday,
			Task:     t.Description,
			Item:     t.Item,
			Qty:      t.Qty,
			Position: pos + int64(i) + 1,
		})
	}
	if err := s.scheduleRepository.CreateTasks(ctx, rows); err != nil {
		return nil, err
	}

	created := toScheduleTasks(rows)
	for _, t := range created {
		s.metrics.TasksGenerated.WithLabelValues(t.Item).Inc()
	}
	utils.GetLogger().WithFields(logrus.Fields{
		"module":  "schedule",
		"created": len(created),
		"weather": input.Weather,
	}).Info("schedule generated")

	if s.notifier != nil {
		if err := s.notifier.NotifyNewTasks(ctx, created); err != nil {
			utils.LogError("schedule", "Generate", "notify new tasks", len(created), err)
		}
	}
	return created, nil
}

func (s *scheduleService) loadInput(ctx context.Context) (planner.ScheduleInput, error) {
	now := s.clock.Now()

	label, err := s.weatherProvider.CurrentLabel(ctx)
	if err != nil {
		utils.LogError("schedule", "Generate", "weather provider, using fallback", planner.FallbackWeather, err)
		s.metrics.WeatherFallbacks.Inc()
		label = planner.FallbackWeather
	}

	records, err := s.leftoverRepository.GetByDay(ctx, now.Format(domain.DateLayout))
	if err != nil {
		return planner.ScheduleInput{}, err
	}
	leftovers := make(map[string]float64, len(records))
	for _, r := range records {
		leftovers[r.Item] = r.Qty
	}

	rows, err := s.inventoryRepository.GetAll(ctx)
	if err != nil {
		return planner.ScheduleInput{}, err
	}
	snapshot := make([]planner.InventorySnapshot, 0, len(rows))
	for _, r := range rows {
		snapshot = append(snapshot, planner.InventorySnapshot{Item: r.Item, Qty: r.Qty, DangerLevel: r.DangerLevel})
	}

	pendingRows, err := s.scheduleRepository.ListPending(ctx)
	if err != nil {
		return planner.ScheduleInput{}, err
	}
	pending := make([]planner.PendingTask, 0, len(pendingRows))
	for _, t := range pendingRows {
		pending = append(pending, planner.PendingTask{Item: t.Item, Weekday: t.Weekday})
	}

	return planner.ScheduleInput{
		Today:        now,
		Weather:      label,
		Inventory:    snapshot,
		Leftovers:    leftovers,
		PendingTasks: pending,
	}, nil
}

func (s *scheduleService) CompleteTask(ctx context.Context, id string) (*domain.CompleteTaskResponse, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	task, applied, err := s.scheduleRepository.CloseTask(ctx, id, entities.TaskActionCompleted, func(t *entities.ScheduleTask) map[string]float64 {
		return planner.CompletionEffect(t.Item, t.Task, planner.ClampQty(t.Qty))
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	s.metrics.TasksClosed.WithLabelValues(entities.TaskActionCompleted).Inc()

	return &domain.CompleteTaskResponse{
		Task:    toScheduleTask(task),
		Applied: applied,
	}, nil
}

func (s *scheduleService) DeleteTask(ctx context.Context, id string) (*domain.ScheduleTask, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	task, _, err := s.scheduleRepository.CloseTask(ctx, id, entities.TaskActionCancelled, nil)
	if err != nil {
		return nil, mapNotFound(err)
	}
	s.metrics.TasksClosed.WithLabelValues(entities.TaskActionCancelled).Inc()

	result := toScheduleTask(task)
	return &result, nil
}

func (s *scheduleService) MoveTask(ctx context.Context, id string, weekday string) (*domain.MoveTaskResponse, error) {
	if !planner.IsWeekdayName(weekday) {
		return nil, domain.ErrInvalidWeekday
	}
	task, err := s.getTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.scheduleRepository.UpdateTask(ctx, id, map[string]any{"weekday": weekday}); err != nil {
		return nil, mapNotFound(err)
	}
	return &domain.MoveTaskResponse{OldWeekday: task.Weekday, NewWeekday: weekday}, nil
}

func (s *scheduleService) UpdateTaskQty(ctx context.Context, id string, qty float64) (*domain.UpdateTaskQtyResponse, error) {
	task, err := s.getTask(ctx, id)
	if err != nil {
		return nil, err
	}

	newQty := planner.ClampQty(qty)
	if err := s.scheduleRepository.UpdateTask(ctx, id, map[string]any{"qty": newQty}); err != nil {
		return nil, mapNotFound(err)
	}
	return &domain.UpdateTaskQtyResponse{OldQty: task.Qty, NewQty: newQty}, nil
}

func (s *scheduleService) ExportSchedule(ctx context.Context) (*bytes.Buffer, error) {
	tasks, err := s.scheduleRepository.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]any, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []any{t.Weekday, t.Task, t.Item, t.Qty})
	}
	return export.WriteSheet("Schedule", []string{"Weekday", "Task", "Item", "Qty"}, rows)
}

func (s *scheduleService) ListTaskEvents(ctx context.Context) ([]domain.TaskEvent, error) {
	events, err := s.scheduleRepository.ListTaskEvents(ctx, historyLimit)
	if err != nil {
		return nil, err
	}

	result := make([]domain.TaskEvent, 0, len(events))
	for _, e := range events {
		result = append(result, domain.TaskEvent{
			ID:        e.ID.String(),
			TaskID:    e.TaskID.String(),
			Weekday:   e.Weekday,
			Task:      e.Task,
			Item:      e.Item,
			Qty:       e.Qty,
			Action:    e.Action,
			CreatedAt: e.CreatedAt,
		})
	}
	return result, nil
}

func (s *scheduleService) getTask(ctx context.Context, id string) (*entities.ScheduleTask, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	task, err := s.scheduleRepository.GetTaskByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return task, nil
}

// validateID treats malformed ids as unknown tasks.
func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrTaskNotFound
	}
	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrTaskNotFound
	}
	return err
}

func toScheduleTask(t *entities.ScheduleTask) domain.ScheduleTask {
	return domain.ScheduleTask{
		ID:      t.ID.String(),
		Weekday: t.Weekday,
		Task:    t.Task,
		Item:    t.Item,
		Qty:     t.Qty,
		Done:    t.Done,
	}
}

func toScheduleTasks(tasks []*entities.ScheduleTask) []domain.ScheduleTask {
	result := make([]domain.ScheduleTask, 0, len(tasks))
	for _, t := range tasks {
		result = append(result, toScheduleTask(t))
	}
	return result
}
