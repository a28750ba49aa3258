package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	resourceRepo "github.com/m04kA/SMC-CapacityService/internal/infra/storage/resource"
	"github.com/m04kA/SMC-CapacityService/internal/service/catalog/models"
	"github.com/m04kA/SMC-CapacityService/pkg/ptr"
)

// Service каталог ресурсов: запросы по совместимости и управление боксами/командами
type Service struct {
	resourceRepo ResourceRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(resourceRepo ResourceRepository, logger Logger) *Service {
	return &Service{
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// ListCompatibleBays возвращает активные боксы, способные принять автомобиль
// указанного класса. Порядок по bay_number ASC сохраняется из репозитория,
// что делает выбор first-fit воспроизводимым
func (s *Service) ListCompatibleBays(ctx context.Context, size domain.VehicleSize) ([]*domain.Bay, error) {
	bays, err := s.resourceRepo.ListBays(ctx, ptr.Ptr(domain.ResourceStatusActive))
	if err != nil {
		s.logger.Error("ListCompatibleBays: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCompatibleBays - repository error: %v", ErrInternal, err)
	}

	compatible := make([]*domain.Bay, 0, len(bays))
	for _, bay := range bays {
		if bay.CanAccommodate(size) {
			compatible = append(compatible, bay)
		}
	}

	// Пустой результат — нормальный исход, не ошибка
	return compatible, nil
}

// ListActiveBays возвращает все активные неудаленные боксы по порядку номеров
func (s *Service) ListActiveBays(ctx context.Context) ([]*domain.Bay, error) {
	bays, err := s.resourceRepo.ListBays(ctx, ptr.Ptr(domain.ResourceStatusActive))
	if err != nil {
		s.logger.Error("ListActiveBays: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActiveBays - repository error: %v", ErrInternal, err)
	}
	return bays, nil
}

// ListTeamsWithinRadius возвращает активные команды, зона обслуживания которых
// покрывает переданную точку (по расстоянию haversine от базы)
func (s *Service) ListTeamsWithinRadius(ctx context.Context, lat, lon float64) ([]*domain.MobileTeam, error) {
	if !domain.ValidCoordinates(lat, lon) {
		return nil, fmt.Errorf("%w: coordinates out of range", ErrInvalidInput)
	}

	teams, err := s.resourceRepo.ListTeams(ctx, ptr.Ptr(domain.ResourceStatusActive))
	if err != nil {
		s.logger.Error("ListTeamsWithinRadius: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListTeamsWithinRadius - repository error: %v", ErrInternal, err)
	}

	covering := make([]*domain.MobileTeam, 0, len(teams))
	for _, team := range teams {
		if team.CoversLocation(lat, lon) {
			covering = append(covering, team)
		}
	}

	return covering, nil
}

// ListActiveTeams возвращает все активные неудаленные команды
func (s *Service) ListActiveTeams(ctx context.Context) ([]*domain.MobileTeam, error) {
	teams, err := s.resourceRepo.ListTeams(ctx, ptr.Ptr(domain.ResourceStatusActive))
	if err != nil {
		s.logger.Error("ListActiveTeams: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActiveTeams - repository error: %v", ErrInternal, err)
	}
	return teams, nil
}

// GetResource получает ресурс по ссылке {тип, id}.
// Несуществующий или мягко удаленный ресурс — ErrResourceNotFound
func (s *Service) GetResource(ctx context.Context, ref domain.ResourceRef) (*domain.Resource, error) {
	switch ref.Type {
	case domain.ResourceTypeWashBay:
		bay, err := s.resourceRepo.GetBayByID(ctx, ref.ID)
		if err != nil {
			if errors.Is(err, resourceRepo.ErrBayNotFound) {
				return nil, ErrResourceNotFound
			}
			s.logger.Error("GetResource: failed to get bay id=%d: %v", ref.ID, err)
			return nil, fmt.Errorf("%w: GetResource - repository error: %v", ErrInternal, err)
		}
		return &domain.Resource{Type: domain.ResourceTypeWashBay, Bay: bay}, nil

	case domain.ResourceTypeMobileTeam:
		team, err := s.resourceRepo.GetTeamByID(ctx, ref.ID)
		if err != nil {
			if errors.Is(err, resourceRepo.ErrTeamNotFound) {
				return nil, ErrResourceNotFound
			}
			s.logger.Error("GetResource: failed to get team id=%d: %v", ref.ID, err)
			return nil, fmt.Errorf("%w: GetResource - repository error: %v", ErrInternal, err)
		}
		return &domain.Resource{Type: domain.ResourceTypeMobileTeam, Team: team}, nil

	default:
		return nil, fmt.Errorf("%w: unknown resource type %q", ErrInvalidInput, ref.Type)
	}
}

// CreateBay создает новый бокс
func (s *Service) CreateBay(ctx context.Context, input *models.CreateBayInput) (*domain.Bay, error) {
	s.logger.Info("CreateBay: bay_number=%s, max_vehicle_size=%s", input.BayNumber, input.MaxVehicleSize)

	bayNumber := strings.TrimSpace(input.BayNumber)
	if bayNumber == "" {
		return nil, fmt.Errorf("%w: bayNumber must not be empty", ErrInvalidInput)
	}
	if len(bayNumber) > domain.MaxBayNumberLength {
		return nil, fmt.Errorf("%w: bayNumber is too long", ErrInvalidInput)
	}

	size, err := domain.ParseVehicleSize(input.MaxVehicleSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if len(input.Equipment) > domain.MaxEquipmentTags {
		return nil, fmt.Errorf("%w: too many equipment tags", ErrInvalidInput)
	}

	// Координаты бокса опциональны, но задаются только парой
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return nil, fmt.Errorf("%w: latitude and longitude must be set together", ErrInvalidInput)
	}
	if input.Latitude != nil && !domain.ValidCoordinates(*input.Latitude, *input.Longitude) {
		return nil, fmt.Errorf("%w: coordinates out of range", ErrInvalidInput)
	}

	input.BayNumber = bayNumber
	created, err := s.resourceRepo.CreateBay(ctx, input.ToDomainBay(size))
	if err != nil {
		if errors.Is(err, resourceRepo.ErrDuplicateBayNumber) {
			s.logger.Warn("CreateBay: bay_number=%s already exists", bayNumber)
			return nil, ErrDuplicateBayNumber
		}
		s.logger.Error("CreateBay: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBay: successfully created bay id=%d", created.ID)
	return created, nil
}

// DeleteBay мягко удаляет бокс: статус inactive, deleted_at проставлен.
// Бокс исключается из всех последующих запросов доступности
func (s *Service) DeleteBay(ctx context.Context, id int64) error {
	s.logger.Info("DeleteBay: bay id=%d", id)

	err := s.resourceRepo.SoftDeleteBay(ctx, id)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrBayNotFound) {
			s.logger.Warn("DeleteBay: bay id=%d not found", id)
			return ErrResourceNotFound
		}
		s.logger.Error("DeleteBay: repository error: %v", err)
		return fmt.Errorf("%w: DeleteBay - repository error: %v", ErrInternal, err)
	}

	return nil
}

// CreateTeam создает новую мобильную команду
func (s *Service) CreateTeam(ctx context.Context, input *models.CreateTeamInput) (*domain.MobileTeam, error) {
	s.logger.Info("CreateTeam: team_name=%s, radius_km=%.1f", input.TeamName, input.ServiceRadiusKM)

	teamName := strings.TrimSpace(input.TeamName)
	if teamName == "" {
		return nil, fmt.Errorf("%w: teamName must not be empty", ErrInvalidInput)
	}
	if len(teamName) > domain.MaxTeamNameLength {
		return nil, fmt.Errorf("%w: teamName is too long", ErrInvalidInput)
	}

	if !domain.ValidCoordinates(input.BaseLatitude, input.BaseLongitude) {
		return nil, fmt.Errorf("%w: base coordinates out of range", ErrInvalidInput)
	}
	if input.ServiceRadiusKM <= 0 || input.ServiceRadiusKM > domain.MaxServiceRadiusKM {
		return nil, fmt.Errorf("%w: serviceRadiusKm must be positive and at most %d", ErrInvalidInput, domain.MaxServiceRadiusKM)
	}
	if input.DailyCapacity <= 0 {
		return nil, fmt.Errorf("%w: dailyCapacity must be positive", ErrInvalidInput)
	}
	if len(input.Equipment) > domain.MaxEquipmentTags {
		return nil, fmt.Errorf("%w: too many equipment tags", ErrInvalidInput)
	}

	input.TeamName = teamName
	created, err := s.resourceRepo.CreateTeam(ctx, input.ToDomainTeam())
	if err != nil {
		if errors.Is(err, resourceRepo.ErrDuplicateTeamName) {
			s.logger.Warn("CreateTeam: team_name=%s already exists", teamName)
			return nil, ErrDuplicateTeamName
		}
		s.logger.Error("CreateTeam: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateTeam - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTeam: successfully created team id=%d", created.ID)
	return created, nil
}

// DeleteTeam мягко удаляет мобильную команду
func (s *Service) DeleteTeam(ctx context.Context, id int64) error {
	s.logger.Info("DeleteTeam: team id=%d", id)

	err := s.resourceRepo.SoftDeleteTeam(ctx, id)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrTeamNotFound) {
			s.logger.Warn("DeleteTeam: team id=%d not found", id)
			return ErrResourceNotFound
		}
		s.logger.Error("DeleteTeam: repository error: %v", err)
		return fmt.Errorf("%w: DeleteTeam - repository error: %v", ErrInternal, err)
	}

	return nil
}
