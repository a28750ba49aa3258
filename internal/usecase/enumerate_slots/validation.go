package enumerate_slots

import (
	"fmt"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, interval int) error {
	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}
	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}
	if req.EndDate.Before(req.StartDate) {
		return ErrInvalidDateRange
	}

	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}
	if req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must not exceed %d", ErrInvalidInput, domain.MaxDurationMinutes)
	}

	if interval <= 0 {
		return fmt.Errorf("%w: slotIntervalMinutes must be positive", ErrInvalidInput)
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
