package get_capacity_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CapacityService/internal/api/handlers"
	enumerateSlots "github.com/m04kA/SMC-CapacityService/internal/usecase/enumerate_slots"
)

const (
	msgMissingStartDate = "параметр start_date обязателен"
	msgMissingEndDate   = "параметр end_date обязателен"
	msgInvalidDate      = "некорректный формат даты, ожидается RFC3339"
	msgMissingDuration  = "параметр duration_minutes обязателен"
	msgInvalidDuration  = "некорректная длительность"
	msgInvalidInterval  = "некорректный slot_interval_minutes"
	msgInvalidDateRange = "end_date раньше start_date"
	msgInvalidInput     = "некорректные входные данные"
)

type Handler struct {
	useCase EnumerateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase EnumerateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/capacity/slots
// Query params: start_date (required, RFC3339), end_date (required, RFC3339),
// duration_minutes (required), slot_interval_minutes (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	startDateStr := query.Get("start_date")
	if startDateStr == "" {
		h.logger.Warn("GET /capacity/slots - Missing start_date")
		handlers.RespondBadRequest(w, msgMissingStartDate)
		return
	}

	endDateStr := query.Get("end_date")
	if endDateStr == "" {
		h.logger.Warn("GET /capacity/slots - Missing end_date")
		handlers.RespondBadRequest(w, msgMissingEndDate)
		return
	}

	durationStr := query.Get("duration_minutes")
	if durationStr == "" {
		h.logger.Warn("GET /capacity/slots - Missing duration_minutes")
		handlers.RespondBadRequest(w, msgMissingDuration)
		return
	}

	durationMinutes, err := strconv.Atoi(durationStr)
	if err != nil {
		h.logger.Warn("GET /capacity/slots - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	// Шаг перебора опционален, 0 означает значение по умолчанию
	slotIntervalMinutes := 0
	if intervalStr := query.Get("slot_interval_minutes"); intervalStr != "" {
		slotIntervalMinutes, err = strconv.Atoi(intervalStr)
		if err != nil {
			h.logger.Warn("GET /capacity/slots - Invalid interval: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInterval)
			return
		}
	}

	// Формируем запрос к use case (с парсингом дат)
	useCaseReq, err := ToUseCaseRequest(startDateStr, endDateStr, durationMinutes, slotIntervalMinutes)
	if err != nil {
		h.logger.Warn("GET /capacity/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, enumerateSlots.ErrInvalidDateRange):
			h.logger.Warn("GET /capacity/slots - Invalid date range: start=%s, end=%s", startDateStr, endDateStr)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, enumerateSlots.ErrInvalidInput):
			h.logger.Warn("GET /capacity/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /capacity/slots - Failed to enumerate slots: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /capacity/slots - Slots enumerated: count=%d", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
