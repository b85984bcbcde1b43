package availability

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/TSB-SchedulingService/internal/domain"
	"github.com/m04kA/TSB-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/TSB-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий недельной сетки доступности
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория сетки доступности
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeek загружает недельную сетку мастера
// В мапу попадают только сохранённые ячейки; отсутствие ячейки означает недоступность
func (r *Repository) GetWeek(ctx context.Context, artistID int64) (domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day", "hour", "is_available").
		From("availability_slots").
		Where(squirrel.Eq{"artist_id": artistID}).
		OrderBy("day ASC, hour ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedule := make(domain.WeeklySchedule)

	for rows.Next() {
		var day, hour int
		var isAvailable bool
		if err := rows.Scan(&day, &hour, &isAvailable); err != nil {
			return nil, fmt.Errorf("%w: GetWeek - scan row: %v", ErrScanRow, err)
		}
		schedule.Set(day, hour, isAvailable)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeek - rows error: %v", ErrScanRow, err)
	}

	return schedule, nil
}

// SetSlot идемпотентно выставляет значение одной ячейки (upsert)
// Последняя запись побеждает - сетку редактирует одна операторская сессия
func (r *Repository) SetSlot(ctx context.Context, artistID int64, day, hour int, isAvailable bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_slots").
		Columns("artist_id", "day", "hour", "is_available").
		Values(artistID, day, hour, isAvailable).
		Suffix("ON CONFLICT (artist_id, day, hour) DO UPDATE SET is_available = EXCLUDED.is_available").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetSlot - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetSlot - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// ReplaceAll полностью заменяет сетку мастера содержимым schedule
// Ячейки, отсутствующие в schedule, становятся недоступными (default-deny)
// Вызывается внутри транзакции (применение шаблона) - частичной записи не бывает
func (r *Repository) ReplaceAll(ctx context.Context, artistID int64, schedule domain.WeeklySchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("availability_slots").
		Where(squirrel.Eq{"artist_id": artistID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAll - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceAll - execute delete: %v", ErrExecQuery, err)
	}

	if len(schedule) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("availability_slots").
		Columns("artist_id", "day", "hour", "is_available")

	for key, isAvailable := range schedule {
		var day, hour int
		if _, err := fmt.Sscanf(string(key), "%d-%d", &day, &hour); err != nil {
			return fmt.Errorf("%w: ReplaceAll - invalid slot key %q: %v", ErrBuildQuery, key, err)
		}
		insertBuilder = insertBuilder.Values(artistID, day, hour, isAvailable)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAll - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceAll - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
