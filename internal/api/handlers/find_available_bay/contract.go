package find_available_bay

import (
	"context"

	findAvailableBay "github.com/m04kA/SMC-CapacityService/internal/usecase/find_available_bay"
)

type FindAvailableBayUseCase interface {
	Execute(ctx context.Context, req *findAvailableBay.Request) (*findAvailableBay.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
