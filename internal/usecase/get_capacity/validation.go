package get_capacity

import (
	"fmt"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
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

// hasConflict проверяет пересечение запрошенного интервала с активными
// бронированиями (строгие неравенства, граничные случаи не считаются)
func hasConflict(bookings []*domain.Booking, requested domain.TimeRange) bool {
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if booking.Interval().Overlaps(requested) {
			return true
		}
	}
	return false
}
