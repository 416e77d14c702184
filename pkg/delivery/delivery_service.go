package delivery

import (
	"context"
	"fmt"
	"prep-scheduler/domain"
	"prep-scheduler/entities"
	"prep-scheduler/internal/utils"
	"prep-scheduler/internal/utils/export"
	"prep-scheduler/internal/utils/metrics"
	"prep-scheduler/internal/utils/storage"
	"prep-scheduler/pkg/inventory"
	"prep-scheduler/pkg/leftover"
	"prep-scheduler/pkg/planner"
	"prep-scheduler/pkg/weather"
	"time"
)

const DefaultSafetyFactor = 1.0

type (
	DeliveryService interface {
		ComputeDelivery(ctx context.Context, req domain.DeliveryRequest) (*domain.DeliveryResponse, error)
		ConfirmDelivery(ctx context.Context, req domain.ConfirmDeliveryRequest) (domain.InventoryResponse, error)
	}

	deliveryService struct {
		deliveryRepository DeliveryRepository
		leftoverRepository leftover.LeftoverRepository
		inventoryService   inventory.InventoryService
		weatherProvider    weather.Provider
		clock              utils.Clock
		s3                 storage.AwsS3
		metrics            *metrics.Metrics
	}
)

// NewDeliveryService archives confirmed sheets only when s3 is not nil.
func NewDeliveryService(
	deliveryRepository DeliveryRepository,
	leftoverRepository leftover.LeftoverRepository,
	inventoryService inventory.InventoryService,
	weatherProvider weather.Provider,
	clock utils.Clock,
	s3 storage.AwsS3,
	m *metrics.Metrics,
) DeliveryService {
	return &deliveryService{
		deliveryRepository: deliveryRepository,
		leftoverRepository: leftoverRepository,
		inventoryService:   inventoryService,
		weatherProvider:    weatherProvider,
		clock:              clock,
		s3:                 s3,
		metrics:            m,
	}
}

func (s *deliveryService) ComputeDelivery(ctx context.Context, req domain.DeliveryRequest) (*domain.DeliveryResponse, error) {
	day, err := time.Parse(domain.DateLayout, req.Day)
	if err != nil {
		return nil, domain.ErrInvalidDay
	}

	pending, err := s.deliveryRepository.PendingTaskDescriptions(ctx, planner.WeekdayName(day))
	if err != nil {
		return nil, err
	}

	confirmed, err := s.deliveryRepository.GetConfirmed(ctx, req.Day)
	if err != nil {
		return nil, err
	}
	if len(confirmed) > 0 {
		stored := make(map[string]float64, len(confirmed))
		for _, p := range confirmed {
			stored[p.Item] = p.PlannedQty
		}
		return &domain.DeliveryResponse{
			Confirmed: true,
			FinalPlan: planner.FormatPlan(stored, pending),
		}, nil
	}

	calendarType := planner.ClassifyDate(day)

	label := planner.WeatherLabel(req.Weather)
	if label == "" {
		label, err = s.weatherProvider.CurrentLabel(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrWeatherUnavailable, err)
		}
	}

	safety := DefaultSafetyFactor
	if req.SafetyFactor != nil {
		safety = *req.SafetyFactor
	}
	base := planner.ComputeBaseline(calendarType, label, safety)

	leftovers, err := s.todaysLeftovers(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.DeliveryResponse{
		Confirmed:      false,
		DateType:       string(calendarType),
		Weather:        string(label),
		BasePlan:       base,
		LeftoversToday: leftovers,
		FinalPlan:      planner.FormatPlan(planner.ApplyLeftoverDeduction(base, leftovers), pending),
	}, nil
}

func (s *deliveryService) todaysLeftovers(ctx context.Context) (map[string]float64, error) {
	today := s.clock.Now().Format(domain.DateLayout)
	records, err := s.leftoverRepository.GetByDay(ctx, today)
	if err != nil {
		return nil, err
	}
	leftovers := make(map[string]float64, len(records))
	for _, r := range records {
		leftovers[r.Item] = r.Qty
	}
	return leftovers, nil
}

func (s *deliveryService) ConfirmDelivery(ctx context.Context, req domain.ConfirmDeliveryRequest) (domain.InventoryResponse, error) {
	if _, err := time.Parse(domain.DateLayout, req.Day); err != nil {
		return nil, domain.ErrInvalidDay
	}
	if len(req.Items) == 0 {
		return nil, domain.ErrEmptyPayload
	}
	if err := inventory.CheckItems(req.Items); err != nil {
		return nil, err
	}

	items := make([]string, 0, len(req.Items))
	for item := range req.Items {
		items = append(items, item)
	}
	planner.SortByCatalog(items)

	plans := make([]*entities.DeliveryPlan, 0, len(items))
	for _, item := range items {
		plans = append(plans, &entities.DeliveryPlan{
			Day:        req.Day,
			Item:       item,
			PlannedQty: planner.ClampQty(req.Items[item]),
			Confirmed:  true,
		})
	}

	if err := s.deliveryRepository.ConfirmPlan(ctx, plans); err != nil {
		return nil, err
	}
	s.metrics.DeliveryConfirmations.Inc()

	s.archive(ctx, req.Day, plans)

	return s.inventoryService.GetInventory(ctx)
}

func (s *deliveryService) archive(ctx context.Context, day string, plans []*entities.DeliveryPlan) {
	if s.s3 == nil {
		return
	}

	rows := make([][]any, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, []any{p.Item, p.PlannedQty})
	}
	buf, err := export.WriteSheet(day, []string{"Item", "Qty"}, rows)
	if err != nil {
		utils.LogError("delivery", "archive", "render sheet", day, err)
		return
	}

	key := fmt.Sprintf("deliveries/%s.xlsx", day)
	if _, err := s.s3.UploadBytes(ctx, key, buf.Bytes(), export.ContentTypeXLSX); err != nil {
		utils.LogError("delivery", "archive", "upload sheet", key, err)
	}
}
