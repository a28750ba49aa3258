package list_bays

import (
	"net/http"

	"github.com/m04kA/SMC-CapacityService/internal/api/handlers"
	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

const msgInvalidVehicleSize = "некорректный класс автомобиля"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bays
// Query params: vehicle_size (optional) — фильтр по совместимости
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var (
		bays []*domain.Bay
		err  error
	)

	if sizeStr := r.URL.Query().Get("vehicle_size"); sizeStr != "" {
		size, parseErr := domain.ParseVehicleSize(sizeStr)
		if parseErr != nil {
			h.logger.Warn("GET /bays - Invalid vehicle size: %v", parseErr)
			handlers.RespondBadRequest(w, msgInvalidVehicleSize)
			return
		}
		bays, err = h.service.ListCompatibleBays(r.Context(), size)
	} else {
		bays, err = h.service.ListActiveBays(r.Context())
	}

	if err != nil {
		h.logger.Error("GET /bays - Failed to list bays: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bays - Bays listed: count=%d", len(bays))
	handlers.RespondJSON(w, http.StatusOK, FromDomainBays(bays))
}
