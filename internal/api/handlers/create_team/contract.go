package create_team

import (
	"context"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	"github.com/m04kA/SMC-CapacityService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateTeam(ctx context.Context, input *models.CreateTeamInput) (*domain.MobileTeam, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
