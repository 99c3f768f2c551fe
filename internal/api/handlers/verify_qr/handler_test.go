package verify_qr

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

	"github.com/vmshq/VMS-VisitorService/pkg/types"

	verifyQR "github.com/vmshq/VMS-VisitorService/internal/usecase/verify_qr"
)

type fakeUseCase struct {
	resp *verifyQR.Response
	err  error
	got  *verifyQR.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *verifyQR.Request) (*verifyQR.Response, error) {
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

func doRequest(t *testing.T, uc *fakeUseCase, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/visitors/verify-qr", bytes.NewReader(data))
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestVerifyQRHandler_OK(t *testing.T) {
	visitTime, err := types.NewTimeStringFromString("10:00")
	require.NoError(t, err)

	uc := &fakeUseCase{resp: &verifyQR.Response{
		ID:          "visitor-1",
		Name:        "Jane Doe",
		Company:     "Acme Corp",
		VisitDate:   time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		VisitTime:   visitTime,
		Status:      "verified",
		CheckedInAt: time.Date(2026, 9, 2, 10, 5, 0, 0, time.UTC),
	}}

	rec := doRequest(t, uc, map[string]string{"qrCode": "QR-1"})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp VerifyQRResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "visitor-1", resp.ID)
	assert.Equal(t, "2026-09-02", resp.VisitDate)
	assert.Equal(t, "10:00", resp.VisitTime)
	assert.Equal(t, "verified", resp.Status)
	assert.Equal(t, "2026-09-02T10:05:00Z", resp.CheckedInAt)

	require.NotNil(t, uc.got)
	assert.Equal(t, "QR-1", uc.got.QRCode)
}

func TestVerifyQRHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unknown code", err: verifyQR.ErrQRNotFound, wantStatus: http.StatusNotFound},
		{name: "expired", err: verifyQR.ErrQRExpired, wantStatus: http.StatusGone},
		{name: "not visit day", err: verifyQR.ErrNotVisitDay, wantStatus: http.StatusConflict},
		{name: "already verified", err: verifyQR.ErrAlreadyVerified, wantStatus: http.StatusConflict},
		{name: "inactive", err: verifyQR.ErrQRInactive, wantStatus: http.StatusConflict},
		{name: "missing code", err: verifyQR.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", err: verifyQR.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, map[string]string{"qrCode": "QR-1"})
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestVerifyQRHandler_MalformedJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/visitors/verify-qr", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()

	NewHandler(&fakeUseCase{}, nopLogger{}).Handle(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
