package find_available_bay

import (
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

// Request модель запроса подбора свободного бокса
type Request struct {
	ScheduledAt     time.Time          // Начало запрошенного интервала
	DurationMinutes int                // Длительность в минутах (> 0)
	VehicleSize     domain.VehicleSize // Класс автомобиля
}

// Response модель ответа подбора.
// BayID == nil означает, что совместимых свободных боксов нет —
// это нормальный исход, не ошибка
type Response struct {
	BayID     *int64
	BayNumber *string
}

// Found returns true if a bay was selected
func (r *Response) Found() bool {
	return r.BayID != nil
}
