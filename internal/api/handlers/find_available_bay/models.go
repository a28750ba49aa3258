package find_available_bay

import (
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	findAvailableBay "github.com/m04kA/SMC-CapacityService/internal/usecase/find_available_bay"
)

// FindAvailableBayResponse HTTP response model.
// BayID == null означает, что свободных совместимых боксов нет
type FindAvailableBayResponse struct {
	BayID     *int64  `json:"bay_id"`
	BayNumber *string `json:"bay_number"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(scheduledAtStr string, durationMinutes int, vehicleSize domain.VehicleSize) (*findAvailableBay.Request, error) {
	scheduledAt, err := time.Parse(time.RFC3339, scheduledAtStr)
	if err != nil {
		return nil, err
	}

	return &findAvailableBay.Request{
		ScheduledAt:     scheduledAt,
		DurationMinutes: durationMinutes,
		VehicleSize:     vehicleSize,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findAvailableBay.Response) *FindAvailableBayResponse {
	return &FindAvailableBayResponse{
		BayID:     resp.BayID,
		BayNumber: resp.BayNumber,
	}
}
