package enumerate_slots

import (
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

// Request модель запроса перечисления доступных слотов
type Request struct {
	StartDate           time.Time // Начало диапазона (включительно)
	EndDate             time.Time // Конец диапазона (включительно)
	DurationMinutes     int       // Длительность бронирования в каждом слоте (> 0)
	SlotIntervalMinutes int       // Шаг перебора; 0 означает значение по умолчанию
}

// Response модель ответа со списком доступных слотов.
// Слоты с нулевой доступной вместимостью опускаются без маркера —
// поведение исходной системы сохранено намеренно
type Response struct {
	Slots []domain.TimeSlot
}
