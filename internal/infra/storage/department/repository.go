package department

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	"github.com/vmshq/VMS-VisitorService/pkg/dbmetrics"
	"github.com/vmshq/VMS-VisitorService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с отделами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отделов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает отдел по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "description", "created_at").
		From("departments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var dep domain.Department
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&dep.ID,
		&dep.Name,
		&dep.Description,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDepartmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan department: %v", ErrScanRow, err)
	}

	dep.CreatedAt = createdAt.Time

	return &dep, nil
}

// List получает все отделы, отсортированные по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Department, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "description", "created_at").
		From("departments").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	departments := make([]*domain.Department, 0)
	for rows.Next() {
		var dep domain.Department
		var createdAt sql.NullTime

		if err := rows.Scan(&dep.ID, &dep.Name, &dep.Description, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		dep.CreatedAt = createdAt.Time
		departments = append(departments, &dep)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return departments, nil
}

// Create создает новый отдел
func (r *Repository) Create(ctx context.Context, dep *domain.Department) (*domain.Department, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("departments").
		Columns("name", "description").
		Values(dep.Name, dep.Description).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&dep.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	dep.CreatedAt = createdAt.Time

	return dep, nil
}
