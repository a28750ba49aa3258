package get_capacity_info

import (
	"context"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	getCapacity "github.com/m04kA/SMC-CapacityService/internal/usecase/get_capacity"
)

type GetCapacityUseCase interface {
	Execute(ctx context.Context, req *getCapacity.Request) (*domain.CapacitySnapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
