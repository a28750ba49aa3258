package get_capacity

import "time"

// Request модель запроса снимка загрузки боксов.
// Совместимость по классу автомобиля намеренно не учитывается: это грубая
// оценка "сколько боксов вообще может принять заказ", а не решение о брони
type Request struct {
	ScheduledAt     time.Time // Начало оцениваемого интервала
	DurationMinutes int       // Длительность в минутах (> 0)
}
