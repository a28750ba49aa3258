package get_capacity_slots

import (
	"context"

	enumerateSlots "github.com/m04kA/SMC-CapacityService/internal/usecase/enumerate_slots"
)

type EnumerateSlotsUseCase interface {
	Execute(ctx context.Context, req *enumerateSlots.Request) (*enumerateSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
