package template

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/TSB-SchedulingService/internal/domain"
	"github.com/m04kA/TSB-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/TSB-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий именованных шаблонов сетки доступности
// Шаблон неизменяем после создания: только создание, применение и удаление
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория шаблонов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет снимок сетки как новый шаблон
// Снимок сериализуется в JSONB одной атомарной записью - частичных записей не бывает
func (r *Repository) Create(ctx context.Context, tmpl *domain.AvailabilityTemplate) (*domain.AvailabilityTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	scheduleJSON, err := json.Marshal(tmpl.Schedule)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal schedule: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("availability_templates").
		Columns("artist_id", "name", "schedule", "recurrence").
		Values(tmpl.ArtistID, tmpl.Name, scheduleJSON, tmpl.Recurrence).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&tmpl.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	tmpl.CreatedAt = createdAt.Time

	return tmpl, nil
}

// GetByID получает шаблон мастера по ID
// Чужой шаблон не возвращается - выборка ограничена (id AND artist_id)
func (r *Repository) GetByID(ctx context.Context, artistID, id int64) (*domain.AvailabilityTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "artist_id", "name", "schedule", "recurrence", "created_at").
		From("availability_templates").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"artist_id": artistID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	tmpl, err := r.scanTemplate(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan template: %v", ErrScanRow, err)
	}

	return tmpl, nil
}

// ListByArtist получает все шаблоны мастера, отсортированные по дате создания
func (r *Repository) ListByArtist(ctx context.Context, artistID int64) ([]*domain.AvailabilityTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "artist_id", "name", "schedule", "recurrence", "created_at").
		From("availability_templates").
		Where(squirrel.Eq{"artist_id": artistID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByArtist - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByArtist - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	templates := make([]*domain.AvailabilityTemplate, 0)

	for rows.Next() {
		tmpl, err := r.scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByArtist - scan row: %v", ErrScanRow, err)
		}
		templates = append(templates, tmpl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByArtist - rows error: %v", ErrScanRow, err)
	}

	return templates, nil
}

// Delete удаляет шаблон мастера
func (r *Repository) Delete(ctx context.Context, artistID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_templates").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"artist_id": artistID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTemplateNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanTemplate(row rowScanner) (*domain.AvailabilityTemplate, error) {
	var tmpl domain.AvailabilityTemplate
	var scheduleJSON []byte
	var createdAt sql.NullTime

	err := row.Scan(
		&tmpl.ID,
		&tmpl.ArtistID,
		&tmpl.Name,
		&scheduleJSON,
		&tmpl.Recurrence,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(scheduleJSON, &tmpl.Schedule); err != nil {
		return nil, fmt.Errorf("unmarshal schedule: %v", err)
	}

	tmpl.CreatedAt = createdAt.Time

	return &tmpl, nil
}
