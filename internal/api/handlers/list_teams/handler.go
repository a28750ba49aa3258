package list_teams

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-CapacityService/internal/api/handlers"
	"github.com/m04kA/SMC-CapacityService/internal/domain"
	"github.com/m04kA/SMC-CapacityService/internal/service/catalog"
)

const (
	msgInvalidCoordinates = "некорректные координаты"
	msgUnpairedCoordinate = "параметры latitude и longitude задаются вместе"
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

// Handle GET /api/v1/teams
// Query params: latitude + longitude (optional pair) — фильтр по зоне покрытия
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	latStr := query.Get("latitude")
	lonStr := query.Get("longitude")

	var (
		teams []*domain.MobileTeam
		err   error
	)

	switch {
	case latStr != "" && lonStr != "":
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			h.logger.Warn("GET /teams - Invalid coordinates: lat=%q, lon=%q", latStr, lonStr)
			handlers.RespondBadRequest(w, msgInvalidCoordinates)
			return
		}
		teams, err = h.service.ListTeamsWithinRadius(r.Context(), lat, lon)

	case latStr == "" && lonStr == "":
		teams, err = h.service.ListActiveTeams(r.Context())

	default:
		// Координаты имеют смысл только парой
		h.logger.Warn("GET /teams - Unpaired coordinate: lat=%q, lon=%q", latStr, lonStr)
		handlers.RespondBadRequest(w, msgUnpairedCoordinate)
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /teams - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCoordinates)

		default:
			h.logger.Error("GET /teams - Failed to list teams: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /teams - Teams listed: count=%d", len(teams))
	handlers.RespondJSON(w, http.StatusOK, FromDomainTeams(teams))
}
