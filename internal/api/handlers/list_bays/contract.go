package list_bays

import (
	"context"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

type CatalogService interface {
	ListActiveBays(ctx context.Context) ([]*domain.Bay, error)
	ListCompatibleBays(ctx context.Context, size domain.VehicleSize) ([]*domain.Bay, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
