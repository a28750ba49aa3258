package domain

import (
	"math"
	"time"
)

// BayAvailability per-bay detail within a capacity snapshot
type BayAvailability struct {
	BayID          int64
	BayNumber      string
	MaxVehicleSize VehicleSize
	IsAvailable    bool
}

// CapacitySnapshot агрегированный отчёт о загрузке боксов на момент времени
type CapacitySnapshot struct {
	ScheduledAt        time.Time
	DurationMinutes    int
	TotalBays          int
	AvailableBays      int
	BookedBays         int
	UtilizationPercent float64
	BayDetails         []BayAvailability
}

// NewCapacitySnapshot строит снимок из списка деталей по боксам.
// Инвариант: AvailableBays + BookedBays == TotalBays
func NewCapacitySnapshot(scheduledAt time.Time, durationMinutes int, details []BayAvailability) *CapacitySnapshot {
	available := 0
	for _, d := range details {
		if d.IsAvailable {
			available++
		}
	}

	total := len(details)
	return &CapacitySnapshot{
		ScheduledAt:        scheduledAt,
		DurationMinutes:    durationMinutes,
		TotalBays:          total,
		AvailableBays:      available,
		BookedBays:         total - available,
		UtilizationPercent: utilizationPercent(total, available),
		BayDetails:         details,
	}
}

// utilizationPercent returns round((total-available)/total*100, 2).
// При пустом каталоге загрузка равна нулю (защита от деления на ноль)
func utilizationPercent(total, available int) float64 {
	if total == 0 {
		return 0
	}
	booked := total - available
	return math.Round(float64(booked)/float64(total)*100*100) / 100
}

// TimeSlot доступный слот в перечислении временных окон
type TimeSlot struct {
	StartTime         time.Time
	EndTime           time.Time
	AvailableCapacity int
	DurationMinutes   int
}
