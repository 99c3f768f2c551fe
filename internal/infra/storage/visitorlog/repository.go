package visitorlog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	"github.com/vmshq/VMS-VisitorService/pkg/dbmetrics"
	"github.com/vmshq/VMS-VisitorService/pkg/psqlbuilder"
)

// Repository репозиторий журнала действий над посетителями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет запись в журнал
// Журнал append-only: записи не редактируются и не удаляются
func (r *Repository) Append(ctx context.Context, log *domain.VisitorLog) (*domain.VisitorLog, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("visitor_logs").
		Columns("visitor_id", "action", "notes").
		Values(log.VisitorID, log.Action, log.Notes).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&log.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	log.CreatedAt = createdAt.Time

	return log, nil
}

// GetByVisitorID получает записи журнала по посетителю (новые первыми)
func (r *Repository) GetByVisitorID(ctx context.Context, visitorID string) ([]*domain.VisitorLog, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "visitor_id", "action", "notes", "created_at").
		From("visitor_logs").
		Where(squirrel.Eq{"visitor_id": visitorID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByVisitorID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVisitorID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	logs := make([]*domain.VisitorLog, 0)
	for rows.Next() {
		var log domain.VisitorLog
		var createdAt sql.NullTime

		if err := rows.Scan(&log.ID, &log.VisitorID, &log.Action, &log.Notes, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: GetByVisitorID - scan row: %v", ErrScanRow, err)
		}

		log.CreatedAt = createdAt.Time
		logs = append(logs, &log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByVisitorID - rows error: %v", ErrScanRow, err)
	}

	return logs, nil
}
