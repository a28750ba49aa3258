package find_available_bay

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CapacityService/internal/api/handlers"
	"github.com/m04kA/SMC-CapacityService/internal/domain"
	findAvailableBay "github.com/m04kA/SMC-CapacityService/internal/usecase/find_available_bay"
)

const (
	msgMissingScheduledAt = "параметр scheduled_at обязателен"
	msgInvalidScheduledAt = "некорректный формат scheduled_at, ожидается RFC3339"
	msgMissingDuration    = "параметр duration_minutes обязателен"
	msgInvalidDuration    = "некорректная длительность"
	msgMissingVehicleSize = "параметр vehicle_size обязателен"
	msgInvalidVehicleSize = "некорректный класс автомобиля"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase FindAvailableBayUseCase
	logger  Logger
}

func NewHandler(useCase FindAvailableBayUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bays/find-available
// Query params: scheduled_at (required, RFC3339), duration_minutes (required),
// vehicle_size (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	scheduledAtStr := query.Get("scheduled_at")
	if scheduledAtStr == "" {
		h.logger.Warn("GET /bays/find-available - Missing scheduled_at")
		handlers.RespondBadRequest(w, msgMissingScheduledAt)
		return
	}

	durationStr := query.Get("duration_minutes")
	if durationStr == "" {
		h.logger.Warn("GET /bays/find-available - Missing duration_minutes")
		handlers.RespondBadRequest(w, msgMissingDuration)
		return
	}

	durationMinutes, err := strconv.Atoi(durationStr)
	if err != nil {
		h.logger.Warn("GET /bays/find-available - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	sizeStr := query.Get("vehicle_size")
	if sizeStr == "" {
		h.logger.Warn("GET /bays/find-available - Missing vehicle_size")
		handlers.RespondBadRequest(w, msgMissingVehicleSize)
		return
	}

	vehicleSize, err := domain.ParseVehicleSize(sizeStr)
	if err != nil {
		h.logger.Warn("GET /bays/find-available - Invalid vehicle size: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleSize)
		return
	}

	// Формируем запрос к use case (с парсингом времени)
	useCaseReq, err := ToUseCaseRequest(scheduledAtStr, durationMinutes, vehicleSize)
	if err != nil {
		h.logger.Warn("GET /bays/find-available - Invalid scheduled_at format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduledAt)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, findAvailableBay.ErrInvalidInput):
			h.logger.Warn("GET /bays/find-available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /bays/find-available - Failed to find bay: vehicle_size=%s, error=%v",
				vehicleSize, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Отсутствие подходящего бокса — нормальный результат, не ошибка
	h.logger.Info("GET /bays/find-available - Search completed: vehicle_size=%s, found=%t",
		vehicleSize, result.Found())
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
