package visitor

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	"github.com/vmshq/VMS-VisitorService/pkg/dbmetrics"
	"github.com/vmshq/VMS-VisitorService/pkg/psqlbuilder"
	"github.com/vmshq/VMS-VisitorService/pkg/types"
)

// visitorColumns полный список колонок таблицы visitors в порядке сканирования
var visitorColumns = []string{
	"id",
	"name",
	"email",
	"phone",
	"company",
	"visitor_type",
	"visitor_category",
	"purpose",
	"department_id",
	"visit_date",
	"visit_time",
	"host_name",
	"host_email",
	"status",
	"qr_code",
	"checked_in_at",
	"checked_out_at",
	"notes",
	"is_rescheduled",
	"original_visit_date",
	"original_visit_time",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с посетителями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория посетителей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись посетителя
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Иначе выполняет обычный запрос без транзакции.
//
// Когда использовать транзакцию:
// - При регистрации с проверкой вместимости слота (для предотвращения race condition)
// - При пакетной загрузке из Excel (каждая строка в своей транзакции)
//
// Когда можно без транзакции:
// - В тестах и при импорте исторических данных, где консистентность слота не критична
func (r *Repository) Create(ctx context.Context, visitor *domain.Visitor) (*domain.Visitor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("visitors").
		Columns(
			"id",
			"name",
			"email",
			"phone",
			"company",
			"visitor_type",
			"visitor_category",
			"purpose",
			"department_id",
			"visit_date",
			"visit_time",
			"host_name",
			"host_email",
			"status",
			"qr_code",
			"notes",
		).
		Values(
			visitor.ID,
			visitor.Name,
			visitor.Email,
			visitor.Phone,
			visitor.Company,
			visitor.VisitorType,
			visitor.VisitorCategory,
			visitor.Purpose,
			visitor.DepartmentID,
			visitor.VisitDate,
			visitor.VisitTime,
			visitor.HostName,
			visitor.HostEmail,
			visitor.Status,
			visitor.QRCode,
			visitor.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" && strings.Contains(pqErr.Constraint, "qr_code") {
			return nil, ErrDuplicateQRCode
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	visitor.CreatedAt = createdAt.Time
	visitor.UpdatedAt = updatedAt.Time

	return visitor, nil
}

// GetByID получает посетителя по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Visitor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(visitorColumns...).
		From("visitors").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanVisitor(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByQRCode получает посетителя по коду пропуска
func (r *Repository) GetByQRCode(ctx context.Context, qrCode string) (*domain.Visitor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(visitorColumns...).
		From("visitors").
		Where(squirrel.Eq{"qr_code": qrCode}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByQRCode - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanVisitor(executor.QueryRowContext(ctx, query, args...), "GetByQRCode")
}

// GetActiveInSlot получает активные записи (pending/verified) в слоте (дата, время)
//
// Если вызов идёт внутри транзакции, добавляет FOR UPDATE для блокировки строк слота.
// Это ключевой механизм защиты от превышения вместимости при конкурентных регистрациях:
// два параллельных запроса на последнее место в слоте сериализуются на блокировке,
// и второй увидит уже занятый слот.
func (r *Repository) GetActiveInSlot(ctx context.Context, visitDate time.Time, visitTime string) ([]*domain.Visitor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(visitorColumns...).
		From("visitors").
		Where(squirrel.Eq{"visit_date": visitDate}).
		Where(squirrel.Eq{"visit_time": visitTime}).
		Where(squirrel.Eq{"status": activeStatusStrings}).
		OrderBy("created_at ASC")

	// Внутри транзакции блокируем строки слота до коммита
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveInSlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveInSlot - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanVisitors(rows)
}

// CountActiveInSlot возвращает число активных записей в слоте без блокировки
// Используется для публичной проверки доступности (read-only)
func (r *Repository) CountActiveInSlot(ctx context.Context, visitDate time.Time, visitTime string) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("visitors").
		Where(squirrel.Eq{"visit_date": visitDate}).
		Where(squirrel.Eq{"visit_time": visitTime}).
		Where(squirrel.Eq{"status": activeStatusStrings}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveInSlot - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveInSlot - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// SlotCounts возвращает занятость всех слотов на дату: visit_time -> число активных записей
// Слоты без записей в мапу не попадают
func (r *Repository) SlotCounts(ctx context.Context, visitDate time.Time) (map[string]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("visit_time", "COUNT(*)").
		From("visitors").
		Where(squirrel.Eq{"visit_date": visitDate}).
		Where(squirrel.Eq{"status": activeStatusStrings}).
		GroupBy("visit_time").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: SlotCounts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: SlotCounts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var visitTime string
		var count int
		if err := rows.Scan(&visitTime, &count); err != nil {
			return nil, fmt.Errorf("%w: SlotCounts - scan row: %v", ErrScanRow, err)
		}
		// Postgres отдаёт time как HH:MM:SS, нормализуем к HH:MM
		if len(visitTime) > 5 {
			visitTime = visitTime[:5]
		}
		counts[visitTime] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: SlotCounts - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// List получает список посетителей с гибкой фильтрацией
// Поддерживает фильтрацию по статусу, отделу, цели визита и периоду дат
func (r *Repository) List(ctx context.Context, filter domain.VisitorsFilter) ([]*domain.Visitor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(visitorColumns...).
		From("visitors")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.DepartmentID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"department_id": *filter.DepartmentID})
	}
	if filter.Purpose != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"purpose": *filter.Purpose})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"visit_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"visit_date": *filter.EndDate})
	}

	selectBuilder = selectBuilder.OrderBy("visit_date DESC, visit_time DESC, created_at DESC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(filter.Limit))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanVisitors(rows)
}

// Search ищет посетителей по имени, email, компании или коду пропуска (ILIKE)
func (r *Repository) Search(ctx context.Context, q string, limit int) ([]*domain.Visitor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	pattern := "%" + q + "%"
	selectBuilder := psqlbuilder.Select(visitorColumns...).
		From("visitors").
		Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"company": pattern},
			squirrel.ILike{"qr_code": pattern},
		}).
		OrderBy("visit_date DESC, visit_time DESC")

	if limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(limit))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Search - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanVisitors(rows)
}

// MarkVerified помечает посетителя как прошедшего проверку QR (check-in)
func (r *Repository) MarkVerified(ctx context.Context, id string, checkedInAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("visitors").
		Set("status", domain.StatusVerified).
		Set("checked_in_at", checkedInAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkVerified - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "MarkVerified")
}

// Complete закрывает визит (check-out или ручное завершение)
func (r *Repository) Complete(ctx context.Context, id string, checkedOutAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("visitors").
		Set("status", domain.StatusCompleted).
		Set("checked_out_at", checkedOutAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Complete - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Complete")
}

// UpdateStatus обновляет статус посетителя
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.VisitorStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("visitors").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateStatus")
}

// Reschedule переносит визит на новый слот с новым кодом пропуска
// Сохраняет исходные дату и время для истории, сбрасывает статус в pending
func (r *Repository) Reschedule(ctx context.Context, id string, newDate time.Time, newTime string, newQRCode string, origDate time.Time, origTime string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("visitors").
		Set("visit_date", newDate).
		Set("visit_time", newTime).
		Set("qr_code", newQRCode).
		Set("status", domain.StatusPending).
		Set("is_rescheduled", true).
		Set("original_visit_date", origDate).
		Set("original_visit_time", origTime).
		Set("checked_in_at", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reschedule - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Reschedule")
}

// Delete удаляет запись посетителя (физическое удаление)
// История действий остаётся в visitor_logs
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("visitors").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Delete")
}

// ExpirePending помечает как expired все pending визиты с датой раньше указанной
// Возвращает ID затронутых записей (для логов)
func (r *Repository) ExpirePending(ctx context.Context, before time.Time) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("visitors").
		Set("status", domain.StatusExpired).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.StatusPending}).
		Where(squirrel.Lt{"visit_date": before}).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ExpirePending - build update query: %v", ErrBuildQuery, err)
	}

	return r.queryIDs(ctx, executor, query, args, "ExpirePending")
}

// CompleteVerified закрывает все verified визиты с датой раньше указанной
// (посетитель прошёл check-in, но не был выписан вручную)
func (r *Repository) CompleteVerified(ctx context.Context, before time.Time, checkedOutAt time.Time) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("visitors").
		Set("status", domain.StatusCompleted).
		Set("checked_out_at", squirrel.Expr("COALESCE(checked_out_at, ?)", checkedOutAt)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.StatusVerified}).
		Where(squirrel.Lt{"visit_date": before}).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CompleteVerified - build update query: %v", ErrBuildQuery, err)
	}

	return r.queryIDs(ctx, executor, query, args, "CompleteVerified")
}

// CountByStatus возвращает число посетителей по каждому статусу
func (r *Repository) CountByStatus(ctx context.Context) (map[domain.VisitorStatus]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("status", "COUNT(*)").
		From("visitors").
		GroupBy("status").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[domain.VisitorStatus]int)
	for rows.Next() {
		var status domain.VisitorStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByStatus - scan row: %v", ErrScanRow, err)
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// CountBetween возвращает число визитов с visit_date в интервале [start, end]
func (r *Repository) CountBetween(ctx context.Context, start, end time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("visitors").
		Where(squirrel.GtOrEq{"visit_date": start}).
		Where(squirrel.LtOrEq{"visit_date": end}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountBetween - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountBetween - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// PurposeCounts возвращает распределение визитов по целям
func (r *Repository) PurposeCounts(ctx context.Context) (map[domain.VisitPurpose]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("purpose", "COUNT(*)").
		From("visitors").
		GroupBy("purpose").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: PurposeCounts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: PurposeCounts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[domain.VisitPurpose]int)
	for rows.Next() {
		var purpose domain.VisitPurpose
		var count int
		if err := rows.Scan(&purpose, &count); err != nil {
			return nil, fmt.Errorf("%w: PurposeCounts - scan row: %v", ErrScanRow, err)
		}
		counts[purpose] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: PurposeCounts - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// DepartmentCounts возвращает распределение визитов по отделам
// Визиты без отдела попадают в строку с DepartmentID = nil
func (r *Repository) DepartmentCounts(ctx context.Context) ([]domain.DepartmentCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"v.department_id",
		"COALESCE(d.name, '')",
		"COUNT(*)",
	).
		From("visitors v").
		LeftJoin("departments d ON d.id = v.department_id").
		GroupBy("v.department_id", "d.name").
		OrderBy("COUNT(*) DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: DepartmentCounts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: DepartmentCounts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.DepartmentCount, 0)
	for rows.Next() {
		var dc domain.DepartmentCount
		var departmentID sql.NullInt64
		if err := rows.Scan(&departmentID, &dc.DepartmentName, &dc.Count); err != nil {
			return nil, fmt.Errorf("%w: DepartmentCounts - scan row: %v", ErrScanRow, err)
		}
		if departmentID.Valid {
			dc.DepartmentID = &departmentID.Int64
		}
		result = append(result, dc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: DepartmentCounts - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// DailyCounts возвращает число визитов на каждую дату интервала [start, end]
// Даты без визитов в результат не попадают
func (r *Repository) DailyCounts(ctx context.Context, start, end time.Time) ([]domain.DailyCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("visit_date", "COUNT(*)").
		From("visitors").
		Where(squirrel.GtOrEq{"visit_date": start}).
		Where(squirrel.LtOrEq{"visit_date": end}).
		GroupBy("visit_date").
		OrderBy("visit_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: DailyCounts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: DailyCounts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.DailyCount, 0)
	for rows.Next() {
		var dc domain.DailyCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, fmt.Errorf("%w: DailyCounts - scan row: %v", ErrScanRow, err)
		}
		result = append(result, dc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: DailyCounts - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// execExpectingRow выполняет update/delete и возвращает ErrVisitorNotFound при нулевом affected
func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrVisitorNotFound
	}

	return nil
}

// queryIDs выполняет запрос с RETURNING id и собирает ID в слайс
func (r *Repository) queryIDs(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) ([]string, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %s - scan id: %v", ErrScanRow, op, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return ids, nil
}

// scanVisitor сканирует одну строку результата в структуру посетителя
func (r *Repository) scanVisitor(row *sql.Row, op string) (*domain.Visitor, error) {
	var visitor domain.Visitor
	var createdAt, updatedAt sql.NullTime
	var departmentID sql.NullInt64
	var checkedInAt, checkedOutAt, originalVisitDate sql.NullTime
	var originalVisitTime sql.NullString

	err := row.Scan(
		&visitor.ID,
		&visitor.Name,
		&visitor.Email,
		&visitor.Phone,
		&visitor.Company,
		&visitor.VisitorType,
		&visitor.VisitorCategory,
		&visitor.Purpose,
		&departmentID,
		&visitor.VisitDate,
		&visitor.VisitTime,
		&visitor.HostName,
		&visitor.HostEmail,
		&visitor.Status,
		&visitor.QRCode,
		&checkedInAt,
		&checkedOutAt,
		&visitor.Notes,
		&visitor.IsRescheduled,
		&originalVisitDate,
		&originalVisitTime,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrVisitorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan visitor: %v", ErrScanRow, op, err)
	}

	fillNullableFields(&visitor, departmentID, checkedInAt, checkedOutAt, originalVisitDate, originalVisitTime)
	visitor.CreatedAt = createdAt.Time
	visitor.UpdatedAt = updatedAt.Time

	return &visitor, nil
}

// scanVisitors сканирует результаты запроса в слайс посетителей
func (r *Repository) scanVisitors(rows *sql.Rows) ([]*domain.Visitor, error) {
	visitors := make([]*domain.Visitor, 0)

	for rows.Next() {
		var visitor domain.Visitor
		var createdAt, updatedAt sql.NullTime
		var departmentID sql.NullInt64
		var checkedInAt, checkedOutAt, originalVisitDate sql.NullTime
		var originalVisitTime sql.NullString

		err := rows.Scan(
			&visitor.ID,
			&visitor.Name,
			&visitor.Email,
			&visitor.Phone,
			&visitor.Company,
			&visitor.VisitorType,
			&visitor.VisitorCategory,
			&visitor.Purpose,
			&departmentID,
			&visitor.VisitDate,
			&visitor.VisitTime,
			&visitor.HostName,
			&visitor.HostEmail,
			&visitor.Status,
			&visitor.QRCode,
			&checkedInAt,
			&checkedOutAt,
			&visitor.Notes,
			&visitor.IsRescheduled,
			&originalVisitDate,
			&originalVisitTime,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanVisitors - scan row: %v", ErrScanRow, err)
		}

		fillNullableFields(&visitor, departmentID, checkedInAt, checkedOutAt, originalVisitDate, originalVisitTime)
		visitor.CreatedAt = createdAt.Time
		visitor.UpdatedAt = updatedAt.Time

		visitors = append(visitors, &visitor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanVisitors - rows error: %v", ErrScanRow, err)
	}

	return visitors, nil
}

// fillNullableFields переносит NULL-able колонки в указатели доменной модели
func fillNullableFields(
	visitor *domain.Visitor,
	departmentID sql.NullInt64,
	checkedInAt, checkedOutAt, originalVisitDate sql.NullTime,
	originalVisitTime sql.NullString,
) {
	if departmentID.Valid {
		visitor.DepartmentID = &departmentID.Int64
	}
	if checkedInAt.Valid {
		visitor.CheckedInAt = &checkedInAt.Time
	}
	if checkedOutAt.Valid {
		visitor.CheckedOutAt = &checkedOutAt.Time
	}
	if originalVisitDate.Valid {
		visitor.OriginalVisitDate = &originalVisitDate.Time
	}
	if originalVisitTime.Valid {
		ts := originalVisitTime.String
		if len(ts) > 5 {
			ts = ts[:5]
		}
		tsVal := types.TimeString(ts)
		visitor.OriginalVisitTime = &tsVal
	}
}
