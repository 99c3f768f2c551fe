package bulk_upload

import (
	"context"
	"errors"
	"fmt"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	"github.com/vmshq/VMS-VisitorService/internal/usecase/register_visitor"
)

// UseCase use case пакетной загрузки посетителей из Excel
type UseCase struct {
	registrar Registrar
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(registrar Registrar, logger Logger) *UseCase {
	return &UseCase{
		registrar: registrar,
		logger:    logger,
	}
}

// Execute обрабатывает загруженный файл построчно
// Каждая строка регистрируется в собственной транзакции: результат
// не атомарен, успешные строки фиксируются независимо от провальных.
// Лимит на одну загрузку - domain.MaxBulkUploadRows принятых строк,
// строки сверх лимита отклоняются с кодом capacity_exceeded
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	parsed, err := parseFile(req.FileData)
	if err != nil {
		uc.logger.Warn("BulkUpload: parse failed: %v", err)
		return nil, err
	}

	uc.logger.Info("BulkUpload: processing %d rows", len(parsed))

	resp := &Response{
		Total:   len(parsed),
		Results: make([]RowResult, 0, len(parsed)),
	}

	accepted := 0
	for _, row := range parsed {
		result := RowResult{Row: row.rowNum}
		if row.req != nil {
			result.Name = row.req.Name
			result.Email = row.req.Email
		}

		switch {
		case row.err != nil:
			result.ErrorKind = KindValidationError
			result.Error = row.err.Error()

		case accepted >= domain.MaxBulkUploadRows:
			result.ErrorKind = KindCapacityExceeded
			result.Error = fmt.Sprintf("submission limit of %d rows exceeded", domain.MaxBulkUploadRows)

		default:
			created, err := uc.registrar.Execute(ctx, row.req)
			if err != nil {
				result.ErrorKind = classifyError(err)
				result.Error = err.Error()
			} else {
				result.Created = true
				result.VisitorID = created.ID
				result.QRCode = created.QRCode
				accepted++
			}
		}

		if result.Created {
			resp.Created++
		} else {
			resp.Failed++
		}
		resp.Results = append(resp.Results, result)
	}

	uc.logger.Info("BulkUpload: done, created=%d, failed=%d", resp.Created, resp.Failed)

	return resp, nil
}

// classifyError мапит ошибки регистрации на коды строк
func classifyError(err error) string {
	switch {
	case errors.Is(err, register_visitor.ErrSlotFull):
		return KindCapacityExceeded
	case errors.Is(err, register_visitor.ErrInvalidSlot),
		errors.Is(err, register_visitor.ErrTooLateToRegister):
		return KindInvalidSlot
	case errors.Is(err, register_visitor.ErrInvalidInput),
		errors.Is(err, register_visitor.ErrDepartmentNotFound):
		return KindValidationError
	default:
		return KindInternalError
	}
}
