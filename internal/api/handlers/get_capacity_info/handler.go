package get_capacity_info

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CapacityService/internal/api/handlers"
	getCapacity "github.com/m04kA/SMC-CapacityService/internal/usecase/get_capacity"
)

const (
	msgMissingScheduledAt = "параметр scheduled_at обязателен"
	msgInvalidScheduledAt = "некорректный формат scheduled_at, ожидается RFC3339"
	msgMissingDuration    = "параметр duration_minutes обязателен"
	msgInvalidDuration    = "некорректная длительность"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase GetCapacityUseCase
	logger  Logger
}

func NewHandler(useCase GetCapacityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/capacity
// Query params: scheduled_at (required, RFC3339), duration_minutes (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	scheduledAtStr := query.Get("scheduled_at")
	if scheduledAtStr == "" {
		h.logger.Warn("GET /capacity - Missing scheduled_at")
		handlers.RespondBadRequest(w, msgMissingScheduledAt)
		return
	}

	durationStr := query.Get("duration_minutes")
	if durationStr == "" {
		h.logger.Warn("GET /capacity - Missing duration_minutes")
		handlers.RespondBadRequest(w, msgMissingDuration)
		return
	}

	durationMinutes, err := strconv.Atoi(durationStr)
	if err != nil {
		h.logger.Warn("GET /capacity - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	// Формируем запрос к use case (с парсингом времени)
	useCaseReq, err := ToUseCaseRequest(scheduledAtStr, durationMinutes)
	if err != nil {
		h.logger.Warn("GET /capacity - Invalid scheduled_at format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduledAt)
		return
	}

	// Вызываем use case
	snapshot, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCapacity.ErrInvalidInput):
			h.logger.Warn("GET /capacity - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /capacity - Failed to build snapshot: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /capacity - Snapshot built: total=%d, available=%d, utilization=%.2f%%",
		snapshot.TotalBays, snapshot.AvailableBays, snapshot.UtilizationPercent)
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(snapshot))
}
