package get_capacity_slots

import (
	"time"

	enumerateSlots "github.com/m04kA/SMC-CapacityService/internal/usecase/enumerate_slots"
)

// SlotsResponse HTTP response model перечисления слотов
type SlotsResponse struct {
	Slots []Slot `json:"slots"`
}

// Slot модель доступного временного слота
type Slot struct {
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	AvailableCapacity int    `json:"available_capacity"`
	DurationMinutes   int    `json:"duration_minutes"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(startDateStr, endDateStr string, durationMinutes, slotIntervalMinutes int) (*enumerateSlots.Request, error) {
	startDate, err := time.Parse(time.RFC3339, startDateStr)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(time.RFC3339, endDateStr)
	if err != nil {
		return nil, err
	}

	return &enumerateSlots.Request{
		StartDate:           startDate,
		EndDate:             endDate,
		DurationMinutes:     durationMinutes,
		SlotIntervalMinutes: slotIntervalMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *enumerateSlots.Response) *SlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = Slot{
			StartTime:         s.StartTime.Format(time.RFC3339),
			EndTime:           s.EndTime.Format(time.RFC3339),
			AvailableCapacity: s.AvailableCapacity,
			DurationMinutes:   s.DurationMinutes,
		}
	}

	return &SlotsResponse{Slots: slots}
}
