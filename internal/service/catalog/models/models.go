package models

import (
	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

// CreateBayInput данные для создания бокса
type CreateBayInput struct {
	BayNumber      string
	MaxVehicleSize string
	Equipment      []string
	Latitude       *float64
	Longitude      *float64
}

// CreateTeamInput данные для создания мобильной команды
type CreateTeamInput struct {
	TeamName        string
	BaseLatitude    float64
	BaseLongitude   float64
	ServiceRadiusKM float64
	DailyCapacity   int
	Equipment       []string
}

// ToDomainBay собирает доменный объект бокса.
// Класс автомобиля валидируется сервисом до вызова
func (i *CreateBayInput) ToDomainBay(size domain.VehicleSize) *domain.Bay {
	return &domain.Bay{
		BayNumber:      i.BayNumber,
		MaxVehicleSize: size,
		Equipment:      i.Equipment,
		Latitude:       i.Latitude,
		Longitude:      i.Longitude,
		Status:         domain.ResourceStatusActive,
	}
}

// ToDomainTeam собирает доменный объект мобильной команды
func (i *CreateTeamInput) ToDomainTeam() *domain.MobileTeam {
	return &domain.MobileTeam{
		TeamName:        i.TeamName,
		BaseLatitude:    i.BaseLatitude,
		BaseLongitude:   i.BaseLongitude,
		ServiceRadiusKM: i.ServiceRadiusKM,
		DailyCapacity:   i.DailyCapacity,
		Equipment:       i.Equipment,
		Status:          domain.ResourceStatusActive,
	}
}
