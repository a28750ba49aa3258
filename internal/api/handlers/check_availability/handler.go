package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CapacityService/internal/api/handlers"
	"github.com/m04kA/SMC-CapacityService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-CapacityService/internal/usecase/check_availability"
)

const (
	msgInvalidResourceType = "некорректный тип ресурса, ожидается wash_bay или mobile_team"
	msgInvalidResourceID   = "некорректный ID ресурса"
	msgMissingScheduledAt  = "параметр scheduled_at обязателен"
	msgInvalidScheduledAt  = "некорректный формат scheduled_at, ожидается RFC3339"
	msgMissingDuration     = "параметр duration_minutes обязателен"
	msgInvalidDuration     = "некорректная длительность"
	msgInvalidExcludeID    = "некорректный exclude_booking_id"
	msgResourceNotFound    = "ресурс не найден"
	msgInvalidInput        = "некорректные входные данные"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceType}/{resourceId}/availability
// Query params: scheduled_at (required, RFC3339), duration_minutes (required),
// exclude_booking_id (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем тип ресурса из URL
	resourceType, err := domain.ParseResourceType(vars["resourceType"])
	if err != nil {
		h.logger.Warn("GET /resources/{type}/{id}/availability - Invalid resource type: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceType)
		return
	}

	// Извлекаем resourceId из URL
	resourceID, err := strconv.ParseInt(vars["resourceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /resources/{type}/{id}/availability - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	// Извлекаем scheduled_at из query параметров
	scheduledAtStr := r.URL.Query().Get("scheduled_at")
	if scheduledAtStr == "" {
		h.logger.Warn("GET /resources/{type}/{id}/availability - Missing scheduled_at")
		handlers.RespondBadRequest(w, msgMissingScheduledAt)
		return
	}

	// Извлекаем duration_minutes из query параметров
	durationStr := r.URL.Query().Get("duration_minutes")
	if durationStr == "" {
		h.logger.Warn("GET /resources/{type}/{id}/availability - Missing duration_minutes")
		handlers.RespondBadRequest(w, msgMissingDuration)
		return
	}

	durationMinutes, err := strconv.Atoi(durationStr)
	if err != nil {
		h.logger.Warn("GET /resources/{type}/{id}/availability - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	// Извлекаем exclude_booking_id из query параметров (опционально)
	var excludeBookingID *int64
	if excludeStr := r.URL.Query().Get("exclude_booking_id"); excludeStr != "" {
		excludeID, err := strconv.ParseInt(excludeStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /resources/{type}/{id}/availability - Invalid exclude_booking_id: %v", err)
			handlers.RespondBadRequest(w, msgInvalidExcludeID)
			return
		}
		excludeBookingID = &excludeID
	}

	// Формируем запрос к use case (с парсингом времени)
	useCaseReq, err := ToUseCaseRequest(resourceType, resourceID, scheduledAtStr, durationMinutes, excludeBookingID)
	if err != nil {
		h.logger.Warn("GET /resources/{type}/{id}/availability - Invalid scheduled_at format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduledAt)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrResourceNotFound):
			h.logger.Warn("GET /resources/{type}/{id}/availability - Resource not found: resource=%s/%d",
				resourceType, resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /resources/{type}/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /resources/{type}/{id}/availability - Failed to check availability: resource=%s/%d, error=%v",
				resourceType, resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{type}/{id}/availability - Availability checked: resource=%s/%d, available=%t",
		resourceType, resourceID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
