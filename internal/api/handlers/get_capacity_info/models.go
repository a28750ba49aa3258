package get_capacity_info

import (
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	getCapacity "github.com/m04kA/SMC-CapacityService/internal/usecase/get_capacity"
)

// CapacityResponse HTTP response model снимка загрузки
type CapacityResponse struct {
	ScheduledAt        string      `json:"scheduled_at"`
	DurationMinutes    int         `json:"duration_minutes"`
	TotalBays          int         `json:"total_bays"`
	AvailableBays      int         `json:"available_bays"`
	BookedBays         int         `json:"booked_bays"`
	UtilizationPercent float64     `json:"utilization_percent"`
	BayDetails         []BayDetail `json:"bay_details"`
}

// BayDetail модель доступности отдельного бокса
type BayDetail struct {
	BayID          int64  `json:"bay_id"`
	BayNumber      string `json:"bay_number"`
	MaxVehicleSize string `json:"max_vehicle_size"`
	IsAvailable    bool   `json:"is_available"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(scheduledAtStr string, durationMinutes int) (*getCapacity.Request, error) {
	scheduledAt, err := time.Parse(time.RFC3339, scheduledAtStr)
	if err != nil {
		return nil, err
	}

	return &getCapacity.Request{
		ScheduledAt:     scheduledAt,
		DurationMinutes: durationMinutes,
	}, nil
}

// FromSnapshot конвертирует доменный снимок в HTTP response
func FromSnapshot(snapshot *domain.CapacitySnapshot) *CapacityResponse {
	details := make([]BayDetail, len(snapshot.BayDetails))
	for i, d := range snapshot.BayDetails {
		details[i] = BayDetail{
			BayID:          d.BayID,
			BayNumber:      d.BayNumber,
			MaxVehicleSize: string(d.MaxVehicleSize),
			IsAvailable:    d.IsAvailable,
		}
	}

	return &CapacityResponse{
		ScheduledAt:        snapshot.ScheduledAt.Format(time.RFC3339),
		DurationMinutes:    snapshot.DurationMinutes,
		TotalBays:          snapshot.TotalBays,
		AvailableBays:      snapshot.AvailableBays,
		BookedBays:         snapshot.BookedBays,
		UtilizationPercent: snapshot.UtilizationPercent,
		BayDetails:         details,
	}
}
