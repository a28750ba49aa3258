package list_bays

import (
	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

// BaysResponse HTTP response model списка боксов
type BaysResponse struct {
	Bays []BayResponse `json:"bays"`
}

// BayResponse модель бокса
type BayResponse struct {
	ID             int64    `json:"id"`
	BayNumber      string   `json:"bay_number"`
	MaxVehicleSize string   `json:"max_vehicle_size"`
	Equipment      []string `json:"equipment"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	Status         string   `json:"status"`
}

// FromDomainBay конвертирует доменный объект бокса в HTTP модель
func FromDomainBay(bay *domain.Bay) BayResponse {
	return BayResponse{
		ID:             bay.ID,
		BayNumber:      bay.BayNumber,
		MaxVehicleSize: string(bay.MaxVehicleSize),
		Equipment:      bay.Equipment,
		Latitude:       bay.Latitude,
		Longitude:      bay.Longitude,
		Status:         string(bay.Status),
	}
}

// FromDomainBays конвертирует список боксов, сохраняя порядок каталога
func FromDomainBays(bays []*domain.Bay) *BaysResponse {
	result := make([]BayResponse, len(bays))
	for i, bay := range bays {
		result[i] = FromDomainBay(bay)
	}
	return &BaysResponse{Bays: result}
}
