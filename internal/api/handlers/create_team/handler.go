package create_team

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
	msgDuplicateTeamName  = "команда с таким именем уже существует"
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

// Handle POST /api/v1/teams
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /teams - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateTeamRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /teams - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	team, err := h.service.CreateTeam(r.Context(), req.ToServiceInput())
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrDuplicateTeamName):
			h.logger.Warn("POST /teams - Duplicate team name: team_name=%s, user_id=%d", req.TeamName, userID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateTeamName)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /teams - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /teams - Failed to create team: team_name=%s, user_id=%d, error=%v",
				req.TeamName, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /teams - Team created: id=%d, team_name=%s, user_id=%d", team.ID, team.TeamName, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainTeam(team))
}
