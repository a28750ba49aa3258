package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	catalogService "github.com/m04kA/SMC-CapacityService/internal/service/catalog"
)

// UseCase use case проверки доступности одного ресурса на интервал времени
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

// Execute выполняет проверку доступности ресурса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: resource=%s/%d, scheduled_at=%s, duration=%d",
		req.Resource.Type, req.Resource.ID, req.ScheduledAt.Format(domain.TimestampFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем ресурс: несуществующий или удаленный — ошибка, не "свободен"
	resource, err := uc.catalog.GetResource(ctx, req.Resource)
	if err != nil {
		if errors.Is(err, catalogService.ErrResourceNotFound) {
			uc.logger.Warn("CheckAvailability: resource %s/%d not found", req.Resource.Type, req.Resource.ID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get resource %s/%d: %v", req.Resource.Type, req.Resource.ID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	// 3. Неактивный ресурс существует, но принять бронирование не может
	if resource.Status() != domain.ResourceStatusActive {
		uc.logger.Info("CheckAvailability: resource %s/%d is %s, reporting unavailable",
			req.Resource.Type, req.Resource.ID, resource.Status())
		return uc.response(req, false), nil
	}

	// 4. Получаем активные бронирования ресурса в окне поиска вокруг интервала
	requested := domain.NewTimeRange(req.ScheduledAt, req.DurationMinutes)
	bookings, err := uc.bookingRepo.ListActiveByResource(ctx, req.Resource, requested.Pad(uc.searchWindow))
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Конфликт есть только при реальном пересечении полуоткрытых интервалов
	available := !hasConflict(bookings, requested, req.ExcludeBookingID)

	uc.logger.Info("CheckAvailability: resource=%s/%d available=%t (%d candidate bookings)",
		req.Resource.Type, req.Resource.ID, available, len(bookings))

	return uc.response(req, available), nil
}

func (uc *UseCase) response(req *Request, available bool) *Response {
	return &Response{
		Resource:        req.Resource,
		ScheduledAt:     req.ScheduledAt,
		DurationMinutes: req.DurationMinutes,
		Available:       available,
	}
}
