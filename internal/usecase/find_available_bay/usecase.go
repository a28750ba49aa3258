package find_available_bay

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

// UseCase use case подбора первого свободного бокса под класс автомобиля.
//
// Политика first-fit, не optimal-fit: выбирается совместимый бокс с наименьшим
// номером. Заполнение предсказуемо и проверяемо персоналом — "первым занимается
// бокс 1"
type UseCase struct {
	catalog      CatalogService
	bookingRepo  BookingRepository
	searchWindow time.Duration
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog CatalogService,
	bookingRepo BookingRepository,
	searchWindowHours int,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:      catalog,
		bookingRepo:  bookingRepo,
		searchWindow: time.Duration(searchWindowHours) * time.Hour,
		logger:       logger,
	}
}

// Execute выполняет подбор свободного бокса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindAvailableBay: scheduled_at=%s, duration=%d, vehicle_size=%s",
		req.ScheduledAt.Format(domain.TimestampFormat), req.DurationMinutes, req.VehicleSize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindAvailableBay: validation failed: %v", err)
		return nil, err
	}

	// 2. Кандидаты: активные совместимые боксы, отсортированные по номеру
	candidates, err := uc.catalog.ListCompatibleBays(ctx, req.VehicleSize)
	if err != nil {
		uc.logger.Error("FindAvailableBay: failed to list compatible bays: %v", err)
		return nil, fmt.Errorf("%w: failed to list compatible bays: %v", ErrInternal, err)
	}

	requested := domain.NewTimeRange(req.ScheduledAt, req.DurationMinutes)
	window := requested.Pad(uc.searchWindow)

	// 3. Перебираем кандидатов по порядку, возвращаем первый свободный
	for _, bay := range candidates {
		ref := domain.ResourceRef{Type: domain.ResourceTypeWashBay, ID: bay.ID}

		bookings, err := uc.bookingRepo.ListActiveByResource(ctx, ref, window)
		if err != nil {
			uc.logger.Error("FindAvailableBay: failed to get bookings for bay id=%d: %v", bay.ID, err)
			return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		if !hasConflict(bookings, requested) {
			uc.logger.Info("FindAvailableBay: selected bay id=%d number=%s", bay.ID, bay.BayNumber)
			return &Response{
				BayID:     &bay.ID,
				BayNumber: &bay.BayNumber,
			}, nil
		}
	}

	// 4. Кандидаты исчерпаны — свободных боксов нет
	uc.logger.Info("FindAvailableBay: no available bay among %d candidates", len(candidates))
	return &Response{}, nil
}
