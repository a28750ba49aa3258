package delete_team

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
	msgInvalidTeamID = "некорректный ID команды"
	msgMissingUserID = "требуется идентификатор пользователя"
	msgTeamNotFound  = "команда не найдена"
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

// Handle DELETE /api/v1/teams/{teamId}
// Мягкое удаление: команда помечается неактивной и исчезает из каталога
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /teams/{id} - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	teamID, err := strconv.ParseInt(mux.Vars(r)["teamId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /teams/{id} - Invalid team ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTeamID)
		return
	}

	if err := h.service.DeleteTeam(r.Context(), teamID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrResourceNotFound):
			h.logger.Warn("DELETE /teams/{id} - Team not found: team_id=%d, user_id=%d", teamID, userID)
			handlers.RespondNotFound(w, msgTeamNotFound)

		default:
			h.logger.Error("DELETE /teams/{id} - Failed to delete team: team_id=%d, user_id=%d, error=%v",
				teamID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /teams/{id} - Team deleted: team_id=%d, user_id=%d", teamID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
