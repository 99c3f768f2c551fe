package bulk_upload

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	"github.com/vmshq/VMS-VisitorService/internal/usecase/register_visitor"
)

type fakeRegistrar struct {
	errByEmail map[string]error
	calls      []*register_visitor.Request
}

func (f *fakeRegistrar) Execute(_ context.Context, req *register_visitor.Request) (*register_visitor.Response, error) {
	f.calls = append(f.calls, req)
	if err, ok := f.errByEmail[req.Email]; ok {
		return nil, err
	}
	return &register_visitor.Response{
		ID:     fmt.Sprintf("id-%d", len(f.calls)),
		QRCode: fmt.Sprintf("qr-%d", len(f.calls)),
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// buildFile собирает .xlsx c шаблонным заголовком и строками данных
func buildFile(t *testing.T, rows [][]string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, header := range TemplateColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, header))
	}

	for r, row := range rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, val))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func dataRow(name, email string) []string {
	return []string{
		name, email, "+1-555-0100", "Acme Corp",
		"professional", "industry", "business_meeting",
		"", "2026-09-02", "10:00", "John Host", "", "",
	}
}

func TestBulkUpload_AllRowsCreated(t *testing.T) {
	registrar := &fakeRegistrar{}
	uc := NewUseCase(registrar, nopLogger{})

	file := buildFile(t, [][]string{
		dataRow("Jane Doe", "jane@example.com"),
		dataRow("Bob Roe", "bob@example.com"),
	})

	resp, err := uc.Execute(context.Background(), &Request{FileData: file})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 2, resp.Created)
	assert.Equal(t, 0, resp.Failed)
	require.Len(t, resp.Results, 2)

	assert.True(t, resp.Results[0].Created)
	assert.Equal(t, 2, resp.Results[0].Row)
	assert.NotEmpty(t, resp.Results[0].VisitorID)
	assert.NotEmpty(t, resp.Results[0].QRCode)
}

func TestBulkUpload_PartialFailureIsNotAtomic(t *testing.T) {
	registrar := &fakeRegistrar{errByEmail: map[string]error{
		"full@example.com": register_visitor.ErrSlotFull,
	}}
	uc := NewUseCase(registrar, nopLogger{})

	file := buildFile(t, [][]string{
		dataRow("Jane Doe", "jane@example.com"),
		dataRow("Full Slot", "full@example.com"),
		dataRow("Bob Roe", "bob@example.com"),
	})

	resp, err := uc.Execute(context.Background(), &Request{FileData: file})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Created)
	assert.Equal(t, 1, resp.Failed)

	// Провальная строка не откатывает соседние
	assert.True(t, resp.Results[0].Created)
	assert.False(t, resp.Results[1].Created)
	assert.Equal(t, KindCapacityExceeded, resp.Results[1].ErrorKind)
	assert.True(t, resp.Results[2].Created)
}

func TestBulkUpload_ErrorClassification(t *testing.T) {
	registrar := &fakeRegistrar{errByEmail: map[string]error{
		"slot@example.com": register_visitor.ErrInvalidSlot,
		"late@example.com": register_visitor.ErrTooLateToRegister,
		"dept@example.com": register_visitor.ErrDepartmentNotFound,
	}}
	uc := NewUseCase(registrar, nopLogger{})

	file := buildFile(t, [][]string{
		dataRow("A", "slot@example.com"),
		dataRow("B", "late@example.com"),
		dataRow("C", "dept@example.com"),
	})

	resp, err := uc.Execute(context.Background(), &Request{FileData: file})
	require.NoError(t, err)

	assert.Equal(t, KindInvalidSlot, resp.Results[0].ErrorKind)
	assert.Equal(t, KindInvalidSlot, resp.Results[1].ErrorKind)
	assert.Equal(t, KindValidationError, resp.Results[2].ErrorKind)
}

func TestBulkUpload_RowParseErrorsDoNotAbortFile(t *testing.T) {
	registrar := &fakeRegistrar{}
	uc := NewUseCase(registrar, nopLogger{})

	badDate := dataRow("Bad Date", "bad@example.com")
	badDate[8] = "02.09.2026"

	file := buildFile(t, [][]string{
		badDate,
		dataRow("Jane Doe", "jane@example.com"),
	})

	resp, err := uc.Execute(context.Background(), &Request{FileData: file})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Failed)
	assert.Equal(t, 1, resp.Created)
	assert.Equal(t, KindValidationError, resp.Results[0].ErrorKind)
	assert.True(t, resp.Results[1].Created)
}

func TestBulkUpload_SubmissionCap(t *testing.T) {
	registrar := &fakeRegistrar{}
	uc := NewUseCase(registrar, nopLogger{})

	rows := make([][]string, 0, domain.MaxBulkUploadRows+3)
	for i := 0; i < domain.MaxBulkUploadRows+3; i++ {
		rows = append(rows, dataRow(fmt.Sprintf("Visitor %d", i), fmt.Sprintf("v%d@example.com", i)))
	}

	resp, err := uc.Execute(context.Background(), &Request{FileData: buildFile(t, rows)})
	require.NoError(t, err)

	assert.Equal(t, domain.MaxBulkUploadRows, resp.Created)
	assert.Equal(t, 3, resp.Failed)

	for _, result := range resp.Results[domain.MaxBulkUploadRows:] {
		assert.Equal(t, KindCapacityExceeded, result.ErrorKind)
	}

	// Регистратор не вызывался для строк сверх лимита
	assert.Len(t, registrar.calls, domain.MaxBulkUploadRows)
}

func TestBulkUpload_EnumNormalization(t *testing.T) {
	registrar := &fakeRegistrar{}
	uc := NewUseCase(registrar, nopLogger{})

	row := dataRow("Jane Doe", "jane@example.com")
	row[4] = "Professional"
	row[5] = "Industry"
	row[6] = "Business Meeting"

	_, err := uc.Execute(context.Background(), &Request{FileData: buildFile(t, [][]string{row})})
	require.NoError(t, err)

	require.Len(t, registrar.calls, 1)
	assert.Equal(t, "professional", registrar.calls[0].VisitorType)
	assert.Equal(t, "industry", registrar.calls[0].VisitorCategory)
	assert.Equal(t, "business_meeting", registrar.calls[0].Purpose)
}

func TestBulkUpload_InvalidFile(t *testing.T) {
	uc := NewUseCase(&fakeRegistrar{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{FileData: []byte("not an xlsx")})
	assert.ErrorIs(t, err, ErrInvalidFile)
}

func TestBulkUpload_EmptyFile(t *testing.T) {
	uc := NewUseCase(&fakeRegistrar{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{FileData: buildFile(t, nil)})
	assert.ErrorIs(t, err, ErrInvalidFile)
}
