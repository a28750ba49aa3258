package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	"github.com/m04kA/SMC-CapacityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CapacityService/pkg/psqlbuilder"
)

// Repository read-only репозиторий бронирований.
// Таблицей bookings владеет BookingService; здесь только чтение
// для разрешения конфликтов по времени
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActiveByResource получает активные бронирования ресурса, чье время начала
// попадает в переданное окно поиска. Терминальные статусы отфильтровываются на
// стороне БД. Окно ограничивает выборку без интервального индекса и на
// корректность проверки пересечений не влияет
func (r *Repository) ListActiveByResource(ctx context.Context, ref domain.ResourceRef, window domain.TimeRange) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	terminalStatusStrings := make([]string, len(domain.TerminalStatuses))
	for i, s := range domain.TerminalStatuses {
		terminalStatusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"resource_type",
		"resource_id",
		"scheduled_at",
		"duration_minutes",
		"status",
	).
		From("bookings").
		Where(squirrel.Eq{"resource_type": ref.Type, "resource_id": ref.ID}).
		Where(squirrel.NotEq{"status": terminalStatusStrings}).
		Where(squirrel.GtOrEq{"scheduled_at": window.Start}).
		Where(squirrel.LtOrEq{"scheduled_at": window.End}).
		OrderBy("scheduled_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByResource - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByResource - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking

		err := rows.Scan(
			&booking.ID,
			&booking.ResourceType,
			&booking.ResourceID,
			&booking.ScheduledAt,
			&booking.DurationMinutes,
			&booking.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
