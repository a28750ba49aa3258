package delete_bay

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CapacityService/internal/api/handlers"
	"github.com/m04kA/SMC-CapacityService/internal/api/middleware"
	"github.com/m04kA/SMC-CapacityService/internal/service/catalog"
)

const (
	msgInvalidBayID  = "некорректный ID бокса"
	msgMissingUserID = "требуется идентификатор пользователя"
	msgBayNotFound   = "бокс не найден"
)

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

// Handle DELETE /api/v1/bays/{bayId}
// Мягкое удаление: бокс помечается неактивным и исчезает из каталога
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /bays/{id} - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	bayID, err := strconv.ParseInt(mux.Vars(r)["bayId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bays/{id} - Invalid bay ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBayID)
		return
	}

	if err := h.service.DeleteBay(r.Context(), bayID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrResourceNotFound):
			h.logger.Warn("DELETE /bays/{id} - Bay not found: bay_id=%d, user_id=%d", bayID, userID)
			handlers.RespondNotFound(w, msgBayNotFound)

		default:
			h.logger.Error("DELETE /bays/{id} - Failed to delete bay: bay_id=%d, user_id=%d, error=%v",
				bayID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bays/{id} - Bay deleted: bay_id=%d, user_id=%d", bayID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
