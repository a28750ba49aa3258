package create_team

import (
	"github.com/m04kA/SMC-CapacityService/internal/domain"
	"github.com/m04kA/SMC-CapacityService/internal/service/catalog/models"
)

// CreateTeamRequest HTTP request model создания мобильной команды
type CreateTeamRequest struct {
	TeamName        string   `json:"team_name"`
	BaseLatitude    float64  `json:"base_latitude"`
	BaseLongitude   float64  `json:"base_longitude"`
	ServiceRadiusKM float64  `json:"service_radius_km"`
	DailyCapacity   int      `json:"daily_capacity"`
	Equipment       []string `json:"equipment"`
}

// CreateTeamResponse HTTP response model созданной команды
type CreateTeamResponse struct {
	ID              int64    `json:"id"`
	TeamName        string   `json:"team_name"`
	BaseLatitude    float64  `json:"base_latitude"`
	BaseLongitude   float64  `json:"base_longitude"`
	ServiceRadiusKM float64  `json:"service_radius_km"`
	DailyCapacity   int      `json:"daily_capacity"`
	Equipment       []string `json:"equipment"`
	Status          string   `json:"status"`
}

// ToServiceInput конвертирует HTTP запрос в модель сервиса
func (r *CreateTeamRequest) ToServiceInput() *models.CreateTeamInput {
	return &models.CreateTeamInput{
		TeamName:        r.TeamName,
		BaseLatitude:    r.BaseLatitude,
		BaseLongitude:   r.BaseLongitude,
		ServiceRadiusKM: r.ServiceRadiusKM,
		DailyCapacity:   r.DailyCapacity,
		Equipment:       r.Equipment,
	}
}

// FromDomainTeam конвертирует доменный объект команды в HTTP response
func FromDomainTeam(team *domain.MobileTeam) *CreateTeamResponse {
	return &CreateTeamResponse{
		ID:              team.ID,
		TeamName:        team.TeamName,
		BaseLatitude:    team.BaseLatitude,
		BaseLongitude:   team.BaseLongitude,
		ServiceRadiusKM: team.ServiceRadiusKM,
		DailyCapacity:   team.DailyCapacity,
		Equipment:       team.Equipment,
		Status:          string(team.Status),
	}
}
