package check_availability

import (
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

// Request модель запроса проверки доступности ресурса.
//
// Ответ носит рекомендательный характер: между проверкой и записью бронирования
// возможна гонка. Сторона, создающая бронирование, обязана сама сериализовать
// последовательность "проверка -> запись" (транзакцией или advisory-блокировкой
// по ресурсу) — этот сервис блокировок не держит
type Request struct {
	Resource         domain.ResourceRef // Проверяемый ресурс (бокс или мобильная команда)
	ScheduledAt      time.Time          // Начало запрошенного интервала
	DurationMinutes  int                // Длительность в минутах (> 0)
	ExcludeBookingID *int64             // Бронирование, игнорируемое при проверке (для переноса)
}

// Response модель ответа проверки доступности
type Response struct {
	Resource        domain.ResourceRef
	ScheduledAt     time.Time
	DurationMinutes int
	Available       bool
}
