package list_teams

import (
	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

// TeamsResponse HTTP response model списка мобильных команд
type TeamsResponse struct {
	Teams []TeamResponse `json:"teams"`
}

// TeamResponse модель мобильной команды
type TeamResponse struct {
	ID              int64    `json:"id"`
	TeamName        string   `json:"team_name"`
	BaseLatitude    float64  `json:"base_latitude"`
	BaseLongitude   float64  `json:"base_longitude"`
	ServiceRadiusKM float64  `json:"service_radius_km"`
	DailyCapacity   int      `json:"daily_capacity"`
	Equipment       []string `json:"equipment"`
	Status          string   `json:"status"`
}

// FromDomainTeam конвертирует доменный объект команды в HTTP модель
func FromDomainTeam(team *domain.MobileTeam) TeamResponse {
	return TeamResponse{
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

// FromDomainTeams конвертирует список команд
func FromDomainTeams(teams []*domain.MobileTeam) *TeamsResponse {
	result := make([]TeamResponse, len(teams))
	for i, team := range teams {
		result[i] = FromDomainTeam(team)
	}
	return &TeamsResponse{Teams: result}
}
