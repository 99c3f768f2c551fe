package department

import "errors"

var (
	// ErrDepartmentNotFound возвращается, когда отдел не найден
	ErrDepartmentNotFound = errors.New("department.repository: department not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("department.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("department.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("department.repository: failed to scan row")
)
