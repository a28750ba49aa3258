package check_availability

import (
	"fmt"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if _, err := domain.ParseResourceType(string(req.Resource.Type)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Resource.ID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}

	if req.ScheduledAt.IsZero() {
		return fmt.Errorf("%w: scheduledAt is required", ErrInvalidInput)
	}

	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}
	if req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must not exceed %d", ErrInvalidInput, domain.MaxDurationMinutes)
	}

	return nil
}

// hasConflict проверяет, пересекается ли запрошенный интервал хотя бы с одним
// активным бронированием. Граничащие интервалы (конец одного равен началу
// другого) пересечением НЕ считаются
func hasConflict(bookings []*domain.Booking, requested domain.TimeRange, excludeBookingID *int64) bool {
	for _, booking := range bookings {
		// Пропускаем неактивные бронирования
		if !booking.IsActive() {
			continue
		}

		// Пропускаем исключенное бронирование (перенос существующей записи)
		if excludeBookingID != nil && booking.ID == *excludeBookingID {
			continue
		}

		if booking.Interval().Overlaps(requested) {
			return true
		}
	}

	return false
}
