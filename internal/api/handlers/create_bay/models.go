package create_bay

import (
	"github.com/m04kA/SMC-CapacityService/internal/domain"
	"github.com/m04kA/SMC-CapacityService/internal/service/catalog/models"
)

// CreateBayRequest HTTP request model создания бокса
type CreateBayRequest struct {
	BayNumber      string   `json:"bay_number"`
	MaxVehicleSize string   `json:"max_vehicle_size"`
	Equipment      []string `json:"equipment"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
}

// CreateBayResponse HTTP response model созданного бокса
type CreateBayResponse struct {
	ID             int64    `json:"id"`
	BayNumber      string   `json:"bay_number"`
	MaxVehicleSize string   `json:"max_vehicle_size"`
	Equipment      []string `json:"equipment"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	Status         string   `json:"status"`
}

// ToServiceInput конвертирует HTTP запрос в модель сервиса
func (r *CreateBayRequest) ToServiceInput() *models.CreateBayInput {
	return &models.CreateBayInput{
		BayNumber:      r.BayNumber,
		MaxVehicleSize: r.MaxVehicleSize,
		Equipment:      r.Equipment,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
	}
}

// FromDomainBay конвертирует доменный объект бокса в HTTP response
func FromDomainBay(bay *domain.Bay) *CreateBayResponse {
	return &CreateBayResponse{
		ID:             bay.ID,
		BayNumber:      bay.BayNumber,
		MaxVehicleSize: string(bay.MaxVehicleSize),
		Equipment:      bay.Equipment,
		Latitude:       bay.Latitude,
		Longitude:      bay.Longitude,
		Status:         string(bay.Status),
	}
}
