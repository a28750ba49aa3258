package catalog

import (
	"context"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

// ResourceRepository интерфейс репозитория каталога ресурсов
type ResourceRepository interface {
	ListBays(ctx context.Context, status *domain.ResourceStatus) ([]*domain.Bay, error)
	GetBayByID(ctx context.Context, id int64) (*domain.Bay, error)
	CreateBay(ctx context.Context, bay *domain.Bay) (*domain.Bay, error)
	SoftDeleteBay(ctx context.Context, id int64) error

	ListTeams(ctx context.Context, status *domain.ResourceStatus) ([]*domain.MobileTeam, error)
	GetTeamByID(ctx context.Context, id int64) (*domain.MobileTeam, error)
	CreateTeam(ctx context.Context, team *domain.MobileTeam) (*domain.MobileTeam, error)
	SoftDeleteTeam(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
