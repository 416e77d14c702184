package leftover

import (
	"context"
	"prep-scheduler/domain"
	"prep-scheduler/entities"
	"prep-scheduler/pkg/planner"
	"time"
)

type (
	LeftoverService interface {
		GetLeftovers(ctx context.Context, day string) (map[string]float64, error)
		UpsertLeftovers(ctx context.Context, day string, leftovers map[string]float64) (map[string]float64, error)
	}

	leftoverService struct {
		leftoverRepository LeftoverRepository
	}
)

func NewLeftoverService(leftoverRepository LeftoverRepository) LeftoverService {
	return &leftoverService{
		leftoverRepository: leftoverRepository,
	}
}

func (s *leftoverService) GetLeftovers(ctx context.Context, day string) (map[string]float64, error) {
	if _, err := time.Parse(domain.DateLayout, day); err != nil {
		return nil, domain.ErrInvalidDay
	}

	records, err := s.leftoverRepository.GetByDay(ctx, day)
	if err != nil {
		return nil, err
	}

	result := make(map[string]float64, len(records))
	for _, r := range records {
		result[r.Item] = r.Qty
	}
	return result, nil
}

func (s *leftoverService) UpsertLeftovers(ctx context.Context, day string, leftovers map[string]float64) (map[string]float64, error) {
	if _, err := time.Parse(domain.DateLayout, day); err != nil {
		return nil, domain.ErrInvalidDay
	}
	if len(leftovers) == 0 {
		return nil, domain.ErrEmptyPayload
	}

	records := make([]*entities.LeftoverRecord, 0, len(leftovers))
	for item, qty := range leftovers {
		records = append(records, &entities.LeftoverRecord{
			Day:  day,
			Item: item,
			Qty:  planner.ClampQty(qty),
		})
	}
	if err := s.leftoverRepository.Upsert(ctx, records); err != nil {
		return nil, err
	}

	return s.GetLeftovers(ctx, day)
}
