package verify_qr

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	visitorRepo "github.com/vmshq/VMS-VisitorService/internal/infra/storage/visitor"
)

type fakeVisitorStorage struct {
	visitor    *domain.Visitor
	verifiedID string
}

func (f *fakeVisitorStorage) GetByQRCode(_ context.Context, code string) (*domain.Visitor, error) {
	if f.visitor == nil || f.visitor.QRCode != code {
		return nil, visitorRepo.ErrVisitorNotFound
	}
	return f.visitor, nil
}

func (f *fakeVisitorStorage) MarkVerified(_ context.Context, id string, _ time.Time) error {
	f.verifiedID = id
	return nil
}

type fakeLogStorage struct {
	logs []*domain.VisitorLog
}

func (f *fakeLogStorage) Append(_ context.Context, log *domain.VisitorLog) (*domain.VisitorLog, error) {
	f.logs = append(f.logs, log)
	return log, nil
}

type fixedTime struct {
	t time.Time
}

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var visitDay = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func pendingVisitor() *domain.Visitor {
	return &domain.Visitor{
		ID:        "visitor-1",
		Name:      "Jane Doe",
		QRCode:    "QR-CODE-1",
		Status:    domain.StatusPending,
		VisitDate: visitDay,
		VisitTime: "10:00",
	}
}

func newTestUseCase(storage *fakeVisitorStorage, logs *fakeLogStorage, now time.Time) *UseCase {
	uc := NewUseCase(storage, logs, nopLogger{})
	uc.timeProvider = fixedTime{t: now}
	return uc
}

func TestVerifyQR_Success(t *testing.T) {
	storage := &fakeVisitorStorage{visitor: pendingVisitor()}
	logs := &fakeLogStorage{}
	now := time.Date(2026, 9, 1, 9, 55, 0, 0, time.UTC)
	uc := newTestUseCase(storage, logs, now)

	resp, err := uc.Execute(context.Background(), &Request{QRCode: "QR-CODE-1"})
	require.NoError(t, err)

	assert.Equal(t, "visitor-1", resp.ID)
	assert.Equal(t, string(domain.StatusVerified), resp.Status)
	assert.Equal(t, now, resp.CheckedInAt)
	assert.Equal(t, "visitor-1", storage.verifiedID)

	require.Len(t, logs.logs, 1)
	assert.Equal(t, domain.ActionVerified, logs.logs[0].Action)
}

func TestVerifyQR_UnknownCode(t *testing.T) {
	uc := newTestUseCase(&fakeVisitorStorage{}, &fakeLogStorage{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{QRCode: "NOPE"})
	assert.ErrorIs(t, err, ErrQRNotFound)
}

func TestVerifyQR_EmptyCode(t *testing.T) {
	uc := newTestUseCase(&fakeVisitorStorage{}, &fakeLogStorage{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestVerifyQR_SecondScanRejected(t *testing.T) {
	visitor := pendingVisitor()
	visitor.Status = domain.StatusVerified
	uc := newTestUseCase(&fakeVisitorStorage{visitor: visitor}, &fakeLogStorage{},
		time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{QRCode: "QR-CODE-1"})
	assert.ErrorIs(t, err, ErrAlreadyVerified)
}

func TestVerifyQR_InactiveStatuses(t *testing.T) {
	for _, status := range []domain.VisitorStatus{domain.StatusCompleted, domain.StatusCancelled, domain.StatusExpired} {
		t.Run(string(status), func(t *testing.T) {
			visitor := pendingVisitor()
			visitor.Status = status
			uc := newTestUseCase(&fakeVisitorStorage{visitor: visitor}, &fakeLogStorage{},
				time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC))

			_, err := uc.Execute(context.Background(), &Request{QRCode: "QR-CODE-1"})
			assert.ErrorIs(t, err, ErrQRInactive)
		})
	}
}

func TestVerifyQR_ExpiredAfterVisitDay(t *testing.T) {
	storage := &fakeVisitorStorage{visitor: pendingVisitor()}
	uc := newTestUseCase(storage, &fakeLogStorage{}, time.Date(2026, 9, 2, 0, 0, 1, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{QRCode: "QR-CODE-1"})
	assert.ErrorIs(t, err, ErrQRExpired)
	assert.Empty(t, storage.verifiedID)
}

func TestVerifyQR_BeforeVisitDay(t *testing.T) {
	storage := &fakeVisitorStorage{visitor: pendingVisitor()}
	uc := newTestUseCase(storage, &fakeLogStorage{}, time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{QRCode: "QR-CODE-1"})
	assert.ErrorIs(t, err, ErrNotVisitDay)
	assert.Empty(t, storage.verifiedID)
}

func TestVerifyQR_ValidUntilEndOfVisitDay(t *testing.T) {
	storage := &fakeVisitorStorage{visitor: pendingVisitor()}
	uc := newTestUseCase(storage, &fakeLogStorage{}, time.Date(2026, 9, 1, 23, 59, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{QRCode: "QR-CODE-1"})
	require.NoError(t, err)
	assert.Equal(t, "visitor-1", resp.ID)
}
