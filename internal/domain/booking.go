package domain

import "time"

// BookingStatus represents the status of a booking.
// Бронированиями владеет BookingService; здесь они читаются только
// для разрешения конфликтов по времени
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
	StatusNoShow     BookingStatus = "no_show"
)

// Booking represents a booking as seen by the capacity resolver (read-only)
type Booking struct {
	ID              int64
	ResourceType    ResourceType
	ResourceID      int64
	ScheduledAt     time.Time
	DurationMinutes int
	Status          BookingStatus
}

// IsActive returns true if the booking still occupies its resource.
// Терминальные статусы (completed, cancelled, no_show) ресурс не блокируют
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending ||
		b.Status == StatusConfirmed ||
		b.Status == StatusInProgress
}

// Interval returns the half-open interval [ScheduledAt, ScheduledAt+Duration)
func (b *Booking) Interval() TimeRange {
	return NewTimeRange(b.ScheduledAt, b.DurationMinutes)
}

// TimeRange полуоткрытый временной интервал [Start, End)
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// NewTimeRange строит интервал от начала и длительности в минутах
func NewTimeRange(start time.Time, durationMinutes int) TimeRange {
	return TimeRange{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

// Overlaps returns true if the two half-open intervals share any point in time.
// Строгие неравенства: интервалы, граничащие по краю, НЕ пересекаются
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}

// Pad расширяет интервал на заданную длительность в обе стороны
func (r TimeRange) Pad(d time.Duration) TimeRange {
	return TimeRange{
		Start: r.Start.Add(-d),
		End:   r.End.Add(d),
	}
}

// TerminalStatuses статусы, освобождающие ресурс.
// Используются для фильтрации при чтении бронирований
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}
