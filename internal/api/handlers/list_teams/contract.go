package list_teams

import (
	"context"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

type CatalogService interface {
	ListActiveTeams(ctx context.Context) ([]*domain.MobileTeam, error)
	ListTeamsWithinRadius(ctx context.Context, lat, lon float64) ([]*domain.MobileTeam, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
