package find_available_bay

import (
	"context"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

// CatalogService интерфейс каталога ресурсов
type CatalogService interface {
	ListCompatibleBays(ctx context.Context, size domain.VehicleSize) ([]*domain.Bay, error)
}

// BookingRepository интерфейс read-only репозитория бронирований
type BookingRepository interface {
	ListActiveByResource(ctx context.Context, ref domain.ResourceRef, window domain.TimeRange) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
