package resource

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	"github.com/m04kA/SMC-CapacityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CapacityService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникального ограничения
const uniqueViolation = "23505"

var bayColumns = []string{
	"id",
	"bay_number",
	"max_vehicle_size",
	"equipment",
	"latitude",
	"longitude",
	"status",
	"deleted_at",
	"created_at",
	"updated_at",
}

var teamColumns = []string{
	"id",
	"team_name",
	"base_latitude",
	"base_longitude",
	"service_radius_km",
	"daily_capacity",
	"equipment",
	"status",
	"deleted_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога ресурсов (боксы и мобильные команды)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресурсов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListBays получает список неудаленных боксов, опционально фильтруя по статусу.
// Сортировка по bay_number ASC детерминирует порядок выбора first-fit
func (r *Repository) ListBays(ctx context.Context, status *domain.ResourceStatus) ([]*domain.Bay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bayColumns...).
		From("wash_bays").
		Where(squirrel.Eq{"deleted_at": nil}).
		OrderBy("bay_number ASC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBays(rows)
}

// GetBayByID получает бокс по ID. Мягко удаленные боксы считаются не найденными
func (r *Repository) GetBayByID(ctx context.Context, id int64) (*domain.Bay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bayColumns...).
		From("wash_bays").
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBayByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	bay, err := scanBay(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBayByID - scan bay: %v", ErrScanRow, err)
	}

	return bay, nil
}

// CreateBay создает новый бокс
func (r *Repository) CreateBay(ctx context.Context, bay *domain.Bay) (*domain.Bay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("wash_bays").
		Columns(
			"bay_number",
			"max_vehicle_size",
			"equipment",
			"latitude",
			"longitude",
			"status",
		).
		Values(
			bay.BayNumber,
			bay.MaxVehicleSize,
			pq.Array(bay.Equipment),
			bay.Latitude,
			bay.Longitude,
			bay.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBay - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&bay.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateBayNumber
		}
		return nil, fmt.Errorf("%w: CreateBay - execute insert: %v", ErrExecQuery, err)
	}

	bay.CreatedAt = createdAt.Time
	bay.UpdatedAt = updatedAt.Time

	return bay, nil
}

// SoftDeleteBay помечает бокс удаленным: статус inactive и deleted_at = NOW().
// Бокс исчезает из всех последующих выборок каталога
func (r *Repository) SoftDeleteBay(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("wash_bays").
		Set("status", domain.ResourceStatusInactive).
		Set("deleted_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SoftDeleteBay - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SoftDeleteBay - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SoftDeleteBay - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBayNotFound
	}

	return nil
}

// ListTeams получает список неудаленных мобильных команд, опционально фильтруя по статусу
func (r *Repository) ListTeams(ctx context.Context, status *domain.ResourceStatus) ([]*domain.MobileTeam, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(teamColumns...).
		From("mobile_teams").
		Where(squirrel.Eq{"deleted_at": nil}).
		OrderBy("team_name ASC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListTeams - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTeams - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanTeams(rows)
}

// GetTeamByID получает мобильную команду по ID. Мягко удаленные команды считаются не найденными
func (r *Repository) GetTeamByID(ctx context.Context, id int64) (*domain.MobileTeam, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(teamColumns...).
		From("mobile_teams").
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTeamByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	team, err := scanTeam(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrTeamNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTeamByID - scan team: %v", ErrScanRow, err)
	}

	return team, nil
}

// CreateTeam создает новую мобильную команду
func (r *Repository) CreateTeam(ctx context.Context, team *domain.MobileTeam) (*domain.MobileTeam, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("mobile_teams").
		Columns(
			"team_name",
			"base_latitude",
			"base_longitude",
			"service_radius_km",
			"daily_capacity",
			"equipment",
			"status",
		).
		Values(
			team.TeamName,
			team.BaseLatitude,
			team.BaseLongitude,
			team.ServiceRadiusKM,
			team.DailyCapacity,
			pq.Array(team.Equipment),
			team.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateTeam - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&team.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateTeamName
		}
		return nil, fmt.Errorf("%w: CreateTeam - execute insert: %v", ErrExecQuery, err)
	}

	team.CreatedAt = createdAt.Time
	team.UpdatedAt = updatedAt.Time

	return team, nil
}

// SoftDeleteTeam помечает мобильную команду удаленной
func (r *Repository) SoftDeleteTeam(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("mobile_teams").
		Set("status", domain.ResourceStatusInactive).
		Set("deleted_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SoftDeleteTeam - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SoftDeleteTeam - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SoftDeleteTeam - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTeamNotFound
	}

	return nil
}

// isUniqueViolation проверяет, является ли ошибка нарушением уникального ограничения
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// scanBay сканирует одну строку бокса
func scanBay(scan func(dest ...interface{}) error) (*domain.Bay, error) {
	var bay domain.Bay
	var equipment pq.StringArray
	var deletedAt, createdAt, updatedAt sql.NullTime

	err := scan(
		&bay.ID,
		&bay.BayNumber,
		&bay.MaxVehicleSize,
		&equipment,
		&bay.Latitude,
		&bay.Longitude,
		&bay.Status,
		&deletedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	bay.Equipment = equipment
	if deletedAt.Valid {
		bay.DeletedAt = &deletedAt.Time
	}
	bay.CreatedAt = createdAt.Time
	bay.UpdatedAt = updatedAt.Time

	return &bay, nil
}

// scanBays сканирует результаты запроса в слайс боксов
func scanBays(rows *sql.Rows) ([]*domain.Bay, error) {
	bays := make([]*domain.Bay, 0)

	for rows.Next() {
		bay, err := scanBay(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBays - scan row: %v", ErrScanRow, err)
		}
		bays = append(bays, bay)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBays - rows error: %v", ErrScanRow, err)
	}

	return bays, nil
}

// scanTeam сканирует одну строку мобильной команды
func scanTeam(scan func(dest ...interface{}) error) (*domain.MobileTeam, error) {
	var team domain.MobileTeam
	var equipment pq.StringArray
	var deletedAt, createdAt, updatedAt sql.NullTime

	err := scan(
		&team.ID,
		&team.TeamName,
		&team.BaseLatitude,
		&team.BaseLongitude,
		&team.ServiceRadiusKM,
		&team.DailyCapacity,
		&equipment,
		&team.Status,
		&deletedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	team.Equipment = equipment
	if deletedAt.Valid {
		team.DeletedAt = &deletedAt.Time
	}
	team.CreatedAt = createdAt.Time
	team.UpdatedAt = updatedAt.Time

	return &team, nil
}

// scanTeams сканирует результаты запроса в слайс команд
func scanTeams(rows *sql.Rows) ([]*domain.MobileTeam, error) {
	teams := make([]*domain.MobileTeam, 0)

	for rows.Next() {
		team, err := scanTeam(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanTeams - scan row: %v", ErrScanRow, err)
		}
		teams = append(teams, team)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTeams - rows error: %v", ErrScanRow, err)
	}

	return teams, nil
}
