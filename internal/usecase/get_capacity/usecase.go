package get_capacity

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

// UseCase use case агрегированной оценки загрузки боксов на интервал времени
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

// Execute строит снимок загрузки: счетчики, процент утилизации и
// детализация по каждому активному боксу
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.CapacitySnapshot, error) {
	uc.logger.Info("GetCapacity: scheduled_at=%s, duration=%d",
		req.ScheduledAt.Format(domain.TimestampFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCapacity: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем доступность каждого активного бокса
	details, err := uc.sweepBays(ctx, req.ScheduledAt, req.DurationMinutes)
	if err != nil {
		return nil, err
	}

	snapshot := domain.NewCapacitySnapshot(req.ScheduledAt, req.DurationMinutes, details)

	uc.logger.Info("GetCapacity: total=%d available=%d booked=%d utilization=%.2f%%",
		snapshot.TotalBays, snapshot.AvailableBays, snapshot.BookedBays, snapshot.UtilizationPercent)

	return snapshot, nil
}

// AvailableCapacity возвращает число боксов, свободных на интервал.
// Тот же обход, что и Execute, без сборки детализации
func (uc *UseCase) AvailableCapacity(ctx context.Context, scheduledAt time.Time, durationMinutes int) (int, error) {
	if err := validateRequest(&Request{ScheduledAt: scheduledAt, DurationMinutes: durationMinutes}); err != nil {
		return 0, err
	}

	details, err := uc.sweepBays(ctx, scheduledAt, durationMinutes)
	if err != nil {
		return 0, err
	}

	available := 0
	for _, d := range details {
		if d.IsAvailable {
			available++
		}
	}
	return available, nil
}

// sweepBays проверяет каждый активный бокс на конфликт с запрошенным интервалом
func (uc *UseCase) sweepBays(ctx context.Context, scheduledAt time.Time, durationMinutes int) ([]domain.BayAvailability, error) {
	bays, err := uc.catalog.ListActiveBays(ctx)
	if err != nil {
		uc.logger.Error("GetCapacity: failed to list active bays: %v", err)
		return nil, fmt.Errorf("%w: failed to list active bays: %v", ErrInternal, err)
	}

	requested := domain.NewTimeRange(scheduledAt, durationMinutes)
	window := requested.Pad(uc.searchWindow)

	details := make([]domain.BayAvailability, 0, len(bays))
	for _, bay := range bays {
		ref := domain.ResourceRef{Type: domain.ResourceTypeWashBay, ID: bay.ID}

		bookings, err := uc.bookingRepo.ListActiveByResource(ctx, ref, window)
		if err != nil {
			uc.logger.Error("GetCapacity: failed to get bookings for bay id=%d: %v", bay.ID, err)
			return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		details = append(details, domain.BayAvailability{
			BayID:          bay.ID,
			BayNumber:      bay.BayNumber,
			MaxVehicleSize: bay.MaxVehicleSize,
			IsAvailable:    !hasConflict(bookings, requested),
		})
	}

	return details, nil
}
