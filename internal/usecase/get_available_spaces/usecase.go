// Package get_available_spaces возвращает пространства, свободные
// в запрошенном интервале. Интервал полуоткрытый: резервация,
// заканчивающаяся в момент начала запрошенного интервала, не мешает.
package get_available_spaces

import (
	"context"
	"fmt"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
)

// UseCase use case для поиска свободных пространств
type UseCase struct {
	reservationRepo ReservationRepository
	spaceRepo       SpaceRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	spaceRepo SpaceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		spaceRepo:       spaceRepo,
		logger:          logger,
	}
}

// Execute выполняет use case поиска свободных пространств
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSpaces: start=%s, end=%s, kind=%v",
		req.Start.Format(domain.DateTimeFormat), req.End.Format(domain.DateTimeFormat), req.Kind)

	// 1. Валидация входных данных
	if req.Start.IsZero() || req.End.IsZero() {
		return nil, fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}
	if !req.Start.Before(req.End) {
		return nil, ErrInvalidTimeRange
	}

	// 2. Получаем активные пространства с фильтром по типу
	filter := domain.SpaceFilter{}
	if req.Kind != nil {
		kind := domain.SpaceKind(*req.Kind)
		if !domain.ValidSpaceKind(kind) {
			return nil, fmt.Errorf("%w: invalid space kind %q", ErrInvalidInput, *req.Kind)
		}
		filter.Kind = &kind
	}

	spaces, err := uc.spaceRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSpaces: failed to list spaces: %v", err)
		return nil, fmt.Errorf("%w: failed to list spaces: %v", ErrInternal, err)
	}

	// 3. Оставляем пространства без пересечений с занятыми интервалами.
	// Занятость определяют одобренные резервации и блокировки,
	// ожидающие заявки пространство не занимают.
	available := make([]*SpaceInfo, 0, len(spaces))
	for _, space := range spaces {
		occupied, err := uc.reservationRepo.GetBySpaceInRange(
			ctx, space.ID, req.Start, req.End, domain.BlockingStatuses, nil)
		if err != nil {
			uc.logger.Error("GetAvailableSpaces: failed to check space id=%d: %v", space.ID, err)
			return nil, fmt.Errorf("%w: failed to check space occupancy: %v", ErrInternal, err)
		}
		if len(occupied) > 0 {
			continue
		}

		available = append(available, &SpaceInfo{
			ID:       space.ID,
			Name:     space.Name,
			Kind:     string(space.Kind),
			Capacity: space.Capacity,
			Location: space.Location,
		})
	}

	uc.logger.Info("GetAvailableSpaces: %d of %d spaces available", len(available), len(spaces))

	return &Response{
		Start:  req.Start,
		End:    req.End,
		Spaces: available,
	}, nil
}
