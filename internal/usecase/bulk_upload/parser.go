package bulk_upload

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	"github.com/vmshq/VMS-VisitorService/internal/usecase/register_visitor"
	"github.com/vmshq/VMS-VisitorService/pkg/ptr"
	"github.com/vmshq/VMS-VisitorService/pkg/types"
)

// TemplateColumns заголовки шаблона пакетной загрузки (первая строка файла)
var TemplateColumns = []string{
	"Name",
	"Email",
	"Phone",
	"Company",
	"Visitor Type",
	"Visitor Category",
	"Purpose",
	"Department ID",
	"Visit Date (YYYY-MM-DD)",
	"Visit Time (HH:MM)",
	"Host Name",
	"Host Email",
	"Notes",
}

// parsedRow одна строка файла, сконвертированная в запрос регистрации
type parsedRow struct {
	rowNum int
	req    *register_visitor.Request
	err    error // ошибка разбора строки
}

// parseFile читает .xlsx и конвертирует строки листа в запросы регистрации
// Ошибки разбора отдельных строк не прерывают обработку файла
func parseFile(data []byte) ([]parsedRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("%w: no sheets found", ErrInvalidFile)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read rows: %v", ErrInvalidFile, err)
	}

	// Первая строка - заголовок
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: file has no data rows", ErrInvalidFile)
	}

	parsed := make([]parsedRow, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNum := i + 2 // нумерация как в Excel

		if isEmptyRow(row) {
			continue
		}

		req, err := parseRow(row)
		parsed = append(parsed, parsedRow{rowNum: rowNum, req: req, err: err})
	}

	if len(parsed) == 0 {
		return nil, fmt.Errorf("%w: file has no data rows", ErrInvalidFile)
	}

	return parsed, nil
}

// parseRow конвертирует ячейки строки в запрос регистрации
// Порядок колонок фиксирован шаблоном TemplateColumns
func parseRow(row []string) (*register_visitor.Request, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	req := &register_visitor.Request{
		Name:            cell(0),
		Email:           cell(1),
		Phone:           cell(2),
		Company:         cell(3),
		VisitorType:     normalizeEnum(cell(4)),
		VisitorCategory: normalizeEnum(cell(5)),
		Purpose:         normalizeEnum(cell(6)),
		HostName:        cell(10),
		HostEmail:       cell(11),
		Notes:           cell(12),
	}

	if dep := cell(7); dep != "" {
		depID, err := strconv.ParseInt(dep, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid department id %q", dep)
		}
		req.DepartmentID = ptr.Ptr(depID)
	}

	dateStr := cell(8)
	if dateStr == "" {
		return nil, fmt.Errorf("visit date is required")
	}
	visitDate, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid visit date %q, expected YYYY-MM-DD", dateStr)
	}
	req.VisitDate = visitDate

	timeStr := cell(9)
	if timeStr == "" {
		return nil, fmt.Errorf("visit time is required")
	}
	visitTime, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid visit time %q, expected HH:MM", timeStr)
	}
	req.VisitTime = visitTime

	return req, nil
}

// normalizeEnum приводит значение перечисления к формату хранения:
// "Business Meeting" -> "business_meeting"
func normalizeEnum(v string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(v), " ", "_"))
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
