package check_availability

import (
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-CapacityService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ResourceType    string `json:"resource_type"`
	ResourceID      int64  `json:"resource_id"`
	ScheduledAt     string `json:"scheduled_at"`
	DurationMinutes int    `json:"duration_minutes"`
	Available       bool   `json:"available"`
}

// ToUseCaseRequest создает запрос use case из параметров маршрута и query
func ToUseCaseRequest(resourceType domain.ResourceType, resourceID int64, scheduledAtStr string, durationMinutes int, excludeBookingID *int64) (*checkAvailability.Request, error) {
	scheduledAt, err := time.Parse(time.RFC3339, scheduledAtStr)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		Resource:         domain.ResourceRef{Type: resourceType, ID: resourceID},
		ScheduledAt:      scheduledAt,
		DurationMinutes:  durationMinutes,
		ExcludeBookingID: excludeBookingID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		ResourceType:    string(resp.Resource.Type),
		ResourceID:      resp.Resource.ID,
		ScheduledAt:     resp.ScheduledAt.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Available:       resp.Available,
	}
}
