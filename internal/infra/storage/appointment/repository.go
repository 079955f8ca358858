package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// appointmentColumns полный набор колонок таблицы appointments
var appointmentColumns = []string{
	"id",
	"client_name",
	"start_time",
	"end_time",
	"status",
	"location",
	"created_at",
	"updated_at",
}

// Repository репозиторий для чтения записей о приёмах
// Сервис доступности только читает записи: их создаёт booking-воркфлоу
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetInRange получает активные записи, пересекающиеся с периодом [from, to]
// Записи упорядочены по времени начала
func (r *Repository) GetInRange(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"status": domain.ActiveStatuses}).
		Where(squirrel.Lt{"start_time": to}).
		Where(squirrel.Gt{"end_time": from}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetInRange - scan appointment: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetInRange - iterate rows: %v", ErrExecQuery, err)
	}

	return appointments, nil
}

// GetBusyIntervals получает занятые интервалы из активных записей за период
// [from, to] - источник busy-времени для шаблонного пути движка
func (r *Repository) GetBusyIntervals(ctx context.Context, from, to time.Time) ([]domain.Interval, error) {
	appointments, err := r.GetInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	busy := make([]domain.Interval, 0, len(appointments))
	for _, appt := range appointments {
		busy = append(busy, appt.BusyInterval())
	}

	return busy, nil
}

func scanAppointment(rows *sql.Rows) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&appt.ID,
		&appt.ClientName,
		&appt.StartTime,
		&appt.EndTime,
		&appt.Status,
		&appt.Location,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}
