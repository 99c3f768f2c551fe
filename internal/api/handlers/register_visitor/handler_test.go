package register_visitor

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmshq/VMS-VisitorService/internal/api/handlers"
	registerVisitor "github.com/vmshq/VMS-VisitorService/internal/usecase/register_visitor"
)

type fakeUseCase struct {
	resp *registerVisitor.Response
	err  error
	got  *registerVisitor.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *registerVisitor.Request) (*registerVisitor.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"name":            "Jane Doe",
		"email":           "jane.doe@example.com",
		"visitorType":     "professional",
		"visitorCategory": "industry",
		"purpose":         "business_meeting",
		"visitDate":       "2026-09-02",
		"visitTime":       "10:00",
	}
}

func doRequest(t *testing.T, uc *fakeUseCase, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/visitors", bytes.NewReader(data))
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestRegisterVisitorHandler_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &registerVisitor.Response{
		ID:        "visitor-1",
		Name:      "Jane Doe",
		Email:     "jane.doe@example.com",
		VisitDate: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		VisitTime: "10:00",
		Status:    "pending",
		QRCode:    "QR-1",
		Remaining: 19,
		CreatedAt: time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC),
	}}

	rec := doRequest(t, uc, validBody())

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp VisitorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "visitor-1", resp.ID)
	assert.Equal(t, "2026-09-02", resp.VisitDate)
	assert.Equal(t, "10:00", resp.VisitTime)
	assert.Equal(t, "QR-1", resp.QRCode)
	assert.Equal(t, 19, resp.Remaining)

	require.NotNil(t, uc.got)
	assert.Equal(t, "Jane Doe", uc.got.Name)
}

func TestRegisterVisitorHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{name: "slot full", err: registerVisitor.ErrSlotFull, wantStatus: http.StatusConflict, wantKind: handlers.KindCapacityExceeded},
		{name: "invalid slot", err: registerVisitor.ErrInvalidSlot, wantStatus: http.StatusBadRequest, wantKind: handlers.KindInvalidSlot},
		{name: "too late", err: registerVisitor.ErrTooLateToRegister, wantStatus: http.StatusBadRequest, wantKind: handlers.KindInvalidSlot},
		{name: "department not found", err: registerVisitor.ErrDepartmentNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid input", err: registerVisitor.ErrInvalidInput, wantStatus: http.StatusBadRequest, wantKind: handlers.KindValidationError},
		{name: "internal", err: registerVisitor.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody())

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
			assert.Equal(t, tt.wantKind, resp.Kind)
		})
	}
}

func TestRegisterVisitorHandler_BadDateFormat(t *testing.T) {
	body := validBody()
	body["visitDate"] = "02.09.2026"

	rec := doRequest(t, &fakeUseCase{}, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, handlers.KindValidationError, resp.Kind)
}

func TestRegisterVisitorHandler_UnknownFieldRejected(t *testing.T) {
	body := validBody()
	body["unexpected"] = "value"

	rec := doRequest(t, &fakeUseCase{}, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterVisitorHandler_MalformedJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/visitors", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()

	NewHandler(&fakeUseCase{}, nopLogger{}).Handle(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
