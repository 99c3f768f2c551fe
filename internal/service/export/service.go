package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	visitorModels "github.com/vmshq/VMS-VisitorService/internal/service/visitors/models"
	"github.com/vmshq/VMS-VisitorService/internal/usecase/bulk_upload"
)

// Service сервис выгрузки реестра посетителей в Excel
type Service struct {
	visitorRepo VisitorRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса выгрузки
func NewService(visitorRepo VisitorRepository, logger Logger) *Service {
	return &Service{
		visitorRepo: visitorRepo,
		logger:      logger,
	}
}

var exportHeaders = []string{
	"ID",
	"Name",
	"Email",
	"Phone",
	"Company",
	"Visitor Type",
	"Visitor Category",
	"Purpose",
	"Visit Date",
	"Visit Time",
	"Host Name",
	"Status",
	"QR Code",
	"Checked In",
	"Checked Out",
	"Notes",
}

// Visitors выгружает реестр посетителей по фильтру в .xlsx
func (s *Service) Visitors(ctx context.Context, req *visitorModels.ListRequest) ([]byte, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("Visitors: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	visitors, err := s.visitorRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Visitors: repository error: %v", err)
		return nil, fmt.Errorf("%w: Visitors - repository error: %v", ErrInternal, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Visitors"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: create sheet: %v", ErrInternal, err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	writeRow(f, sheetName, 1, exportHeaders)

	for i, v := range visitors {
		checkedIn, checkedOut := "", ""
		if v.CheckedInAt != nil {
			checkedIn = v.CheckedInAt.Format("2006-01-02 15:04")
		}
		if v.CheckedOutAt != nil {
			checkedOut = v.CheckedOutAt.Format("2006-01-02 15:04")
		}

		writeRow(f, sheetName, i+2, []string{
			v.ID,
			v.Name,
			v.Email,
			v.Phone,
			v.Company,
			string(v.VisitorType),
			string(v.VisitorCategory),
			string(v.Purpose),
			v.VisitDate.Format(domain.DateFormat),
			v.VisitTime.String(),
			v.HostName,
			string(v.Status),
			v.QRCode,
			checkedIn,
			checkedOut,
			v.Notes,
		})
	}

	_ = f.SetColWidth(sheetName, "A", "A", 38)
	_ = f.SetColWidth(sheetName, "B", "P", 20)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	lastHeader, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	_ = f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("%w: write workbook: %v", ErrInternal, err)
	}

	s.logger.Info("Visitors: exported %d rows", len(visitors))

	return buf.Bytes(), nil
}

// BulkTemplate возвращает пустой шаблон пакетной загрузки
// Колонки совпадают с теми, что ожидает разбор загруженного файла
func (s *Service) BulkTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Visitors"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: create sheet: %v", ErrInternal, err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	writeRow(f, sheetName, 1, bulk_upload.TemplateColumns)

	// Строка-пример, чтобы форматы дат и перечислений были очевидны
	writeRow(f, sheetName, 2, []string{
		"Jane Doe",
		"jane.doe@example.com",
		"+1-555-0100",
		"Acme Corp",
		"professional",
		"industry",
		"business_meeting",
		"",
		"2026-09-01",
		"10:00",
		"John Host",
		"john.host@example.com",
		"",
	})

	_ = f.SetColWidth(sheetName, "A", "M", 24)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	lastHeader, _ := excelize.CoordinatesToCellName(len(bulk_upload.TemplateColumns), 1)
	_ = f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("%w: write workbook: %v", ErrInternal, err)
	}

	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []string) {
	for col, val := range values {
		cell, _ := excelize.CoordinatesToCellName(col+1, row)
		_ = f.SetCellValue(sheet, cell, val)
	}
}
