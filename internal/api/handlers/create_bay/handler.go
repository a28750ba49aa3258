package create_bay

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CapacityService/internal/api/handlers"
	"github.com/m04kA/SMC-CapacityService/internal/api/middleware"
	"github.com/m04kA/SMC-CapacityService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "требуется идентификатор пользователя"
	msgDuplicateBayNumber = "бокс с таким номером уже существует"
	msgInvalidInput       = "некорректные входные данные"
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

// Handle POST /api/v1/bays
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bays - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bays - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	bay, err := h.service.CreateBay(r.Context(), req.ToServiceInput())
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrDuplicateBayNumber):
			h.logger.Warn("POST /bays - Duplicate bay number: bay_number=%s, user_id=%d", req.BayNumber, userID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateBayNumber)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /bays - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bays - Failed to create bay: bay_number=%s, user_id=%d, error=%v",
				req.BayNumber, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bays - Bay created: id=%d, bay_number=%s, user_id=%d", bay.ID, bay.BayNumber, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainBay(bay))
}
