package enumerate_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

// UseCase use case перечисления слотов с доступной вместимостью в диапазоне дат.
//
// Бронирования каждого бокса выбираются одним запросом на весь диапазон,
// а шаги оцениваются в памяти — вместо отдельного запроса вместимости на
// каждый шаг перебора
type UseCase struct {
	catalog             CatalogService
	bookingRepo         BookingRepository
	searchWindow        time.Duration
	defaultSlotInterval int
	logger              Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog CatalogService,
	bookingRepo BookingRepository,
	searchWindowHours int,
	defaultSlotIntervalMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:             catalog,
		bookingRepo:         bookingRepo,
		searchWindow:        time.Duration(searchWindowHours) * time.Hour,
		defaultSlotInterval: defaultSlotIntervalMinutes,
		logger:              logger,
	}
}

// Execute перечисляет слоты от StartDate до EndDate включительно с шагом
// SlotIntervalMinutes. Эмитятся только слоты с доступной вместимостью > 0
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// Шаг по умолчанию из конфигурации
	interval := req.SlotIntervalMinutes
	if interval == 0 {
		interval = uc.defaultSlotInterval
	}

	uc.logger.Info("EnumerateSlots: start=%s, end=%s, duration=%d, interval=%d",
		req.StartDate.Format(domain.TimestampFormat), req.EndDate.Format(domain.TimestampFormat),
		req.DurationMinutes, interval)

	// 1. Валидация входных данных
	if err := validateRequest(req, interval); err != nil {
		uc.logger.Warn("EnumerateSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем активные боксы
	bays, err := uc.catalog.ListActiveBays(ctx)
	if err != nil {
		uc.logger.Error("EnumerateSlots: failed to list active bays: %v", err)
		return nil, fmt.Errorf("%w: failed to list active bays: %v", ErrInternal, err)
	}

	// 3. Одна выборка бронирований на бокс на весь диапазон.
	// Окно покрывает последний слот [EndDate, EndDate+duration) с запасом
	fullRange := domain.TimeRange{
		Start: req.StartDate,
		End:   req.EndDate.Add(time.Duration(req.DurationMinutes) * time.Minute),
	}
	window := fullRange.Pad(uc.searchWindow)

	bookingsByBay := make(map[int64][]*domain.Booking, len(bays))
	for _, bay := range bays {
		ref := domain.ResourceRef{Type: domain.ResourceTypeWashBay, ID: bay.ID}

		bookings, err := uc.bookingRepo.ListActiveByResource(ctx, ref, window)
		if err != nil {
			uc.logger.Error("EnumerateSlots: failed to get bookings for bay id=%d: %v", bay.ID, err)
			return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}
		bookingsByBay[bay.ID] = bookings
	}

	// 4. Перебираем шаги и считаем вместимость в памяти.
	// Слоты с нулевой вместимостью молча опускаются
	slots := make([]domain.TimeSlot, 0)
	step := time.Duration(interval) * time.Minute

	for t := req.StartDate; !t.After(req.EndDate); t = t.Add(step) {
		requested := domain.NewTimeRange(t, req.DurationMinutes)

		capacity := 0
		for _, bay := range bays {
			if !hasConflict(bookingsByBay[bay.ID], requested) {
				capacity++
			}
		}

		if capacity > 0 {
			slots = append(slots, domain.TimeSlot{
				StartTime:         requested.Start,
				EndTime:           requested.End,
				AvailableCapacity: capacity,
				DurationMinutes:   req.DurationMinutes,
			})
		}
	}

	uc.logger.Info("EnumerateSlots: emitted %d slots over %d bays", len(slots), len(bays))

	return &Response{Slots: slots}, nil
}
