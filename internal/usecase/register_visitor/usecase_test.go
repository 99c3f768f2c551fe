package register_visitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	"github.com/vmshq/VMS-VisitorService/internal/infra/mailqueue"
	departmentRepo "github.com/vmshq/VMS-VisitorService/internal/infra/storage/department"
	"github.com/vmshq/VMS-VisitorService/pkg/ptr"
)

type fakeVisitorStorage struct {
	active    []*domain.Visitor
	created   *domain.Visitor
	createErr error
}

func (f *fakeVisitorStorage) Create(_ context.Context, v *domain.Visitor) (*domain.Visitor, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = v
	return v, nil
}

func (f *fakeVisitorStorage) GetActiveInSlot(_ context.Context, _ time.Time, _ string) ([]*domain.Visitor, error) {
	return f.active, nil
}

type fakeDepartmentStorage struct {
	err error
}

func (f *fakeDepartmentStorage) GetByID(_ context.Context, id int64) (*domain.Department, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Department{ID: id, Name: "Engineering"}, nil
}

type fakeLogStorage struct {
	logs []*domain.VisitorLog
}

func (f *fakeLogStorage) Append(_ context.Context, log *domain.VisitorLog) (*domain.VisitorLog, error) {
	f.logs = append(f.logs, log)
	return log, nil
}

type fakeMailQueue struct {
	tasks []mailqueue.Task
	err   error
}

func (f *fakeMailQueue) Enqueue(_ context.Context, task mailqueue.Task) error {
	if f.err != nil {
		return f.err
	}
	f.tasks = append(f.tasks, task)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	t time.Time
}

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// вторник 2026-09-01, 08:00
var testNow = time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

func newTestUseCase(storage *fakeVisitorStorage, deps *fakeDepartmentStorage, logs *fakeLogStorage, mail *fakeMailQueue) *UseCase {
	uc := NewUseCase(storage, deps, logs, mail, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{t: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		Name:            "Jane Doe",
		Email:           "jane.doe@example.com",
		Phone:           "+1-555-0100",
		Company:         "Acme Corp",
		VisitorType:     "professional",
		VisitorCategory: "industry",
		Purpose:         "business_meeting",
		VisitDate:       time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), // среда
		VisitTime:       "10:00",
		HostName:        "John Host",
	}
}

func activeVisitors(n int) []*domain.Visitor {
	visitors := make([]*domain.Visitor, 0, n)
	for i := 0; i < n; i++ {
		visitors = append(visitors, &domain.Visitor{Status: domain.StatusPending})
	}
	return visitors
}

func TestRegisterVisitor_Success(t *testing.T) {
	storage := &fakeVisitorStorage{}
	logs := &fakeLogStorage{}
	mail := &fakeMailQueue{}
	uc := newTestUseCase(storage, &fakeDepartmentStorage{}, logs, mail)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.QRCode)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, domain.SlotCapacity-1, resp.Remaining)

	require.NotNil(t, storage.created)
	assert.Equal(t, domain.StatusPending, storage.created.Status)

	require.Len(t, logs.logs, 1)
	assert.Equal(t, domain.ActionRegistered, logs.logs[0].Action)

	require.Len(t, mail.tasks, 1)
	assert.Equal(t, mailqueue.KindConfirmation, mail.tasks[0].Kind)
	assert.Equal(t, resp.ID, mail.tasks[0].VisitorID)
}

func TestRegisterVisitor_SlotFull(t *testing.T) {
	storage := &fakeVisitorStorage{active: activeVisitors(domain.SlotCapacity)}
	mail := &fakeMailQueue{}
	uc := newTestUseCase(storage, &fakeDepartmentStorage{}, &fakeLogStorage{}, mail)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotFull)
	assert.Nil(t, storage.created)
	assert.Empty(t, mail.tasks)
}

func TestRegisterVisitor_LastSpot(t *testing.T) {
	storage := &fakeVisitorStorage{active: activeVisitors(domain.SlotCapacity - 1)}
	uc := newTestUseCase(storage, &fakeDepartmentStorage{}, &fakeLogStorage{}, &fakeMailQueue{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Remaining)
}

func TestRegisterVisitor_SlotValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{
			name:    "weekend",
			mutate:  func(r *Request) { r.VisitDate = time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC) }, // суббота
			wantErr: ErrInvalidSlot,
		},
		{
			name:    "not hour aligned",
			mutate:  func(r *Request) { r.VisitTime = "10:30" },
			wantErr: ErrInvalidSlot,
		},
		{
			name:    "before business hours",
			mutate:  func(r *Request) { r.VisitTime = "08:00" },
			wantErr: ErrInvalidSlot,
		},
		{
			name:    "at closing hour",
			mutate:  func(r *Request) { r.VisitTime = "17:00" },
			wantErr: ErrInvalidSlot,
		},
		{
			name:    "date in the past",
			mutate:  func(r *Request) { r.VisitDate = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC) },
			wantErr: ErrInvalidSlot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeVisitorStorage{}, &fakeDepartmentStorage{}, &fakeLogStorage{}, &fakeMailQueue{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterVisitor_MinimumNotice(t *testing.T) {
	t.Run("same day too late", func(t *testing.T) {
		uc := newTestUseCase(&fakeVisitorStorage{}, &fakeDepartmentStorage{}, &fakeLogStorage{}, &fakeMailQueue{})
		uc.timeProvider = fixedTime{t: time.Date(2026, 9, 1, 9, 45, 0, 0, time.UTC)}

		req := validRequest()
		req.VisitDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		req.VisitTime = "10:00"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrTooLateToRegister)
	})

	t.Run("same day with enough notice", func(t *testing.T) {
		uc := newTestUseCase(&fakeVisitorStorage{}, &fakeDepartmentStorage{}, &fakeLogStorage{}, &fakeMailQueue{})

		req := validRequest()
		req.VisitDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		req.VisitTime = "10:00"

		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("future day ignores notice", func(t *testing.T) {
		uc := newTestUseCase(&fakeVisitorStorage{}, &fakeDepartmentStorage{}, &fakeLogStorage{}, &fakeMailQueue{})
		uc.timeProvider = fixedTime{t: time.Date(2026, 9, 1, 16, 50, 0, 0, time.UTC)}

		req := validRequest()
		req.VisitTime = "09:00"

		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})
}

func TestRegisterVisitor_InputValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "empty name", mutate: func(r *Request) { r.Name = "" }},
		{name: "invalid email", mutate: func(r *Request) { r.Email = "not-an-email" }},
		{name: "invalid visitor type", mutate: func(r *Request) { r.VisitorType = "contractor" }},
		{name: "invalid category", mutate: func(r *Request) { r.VisitorCategory = "unknown" }},
		{name: "invalid purpose", mutate: func(r *Request) { r.Purpose = "sightseeing" }},
		{name: "zero date", mutate: func(r *Request) { r.VisitDate = time.Time{} }},
		{name: "empty time", mutate: func(r *Request) { r.VisitTime = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeVisitorStorage{}, &fakeDepartmentStorage{}, &fakeLogStorage{}, &fakeMailQueue{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRegisterVisitor_DepartmentNotFound(t *testing.T) {
	deps := &fakeDepartmentStorage{err: departmentRepo.ErrDepartmentNotFound}
	uc := newTestUseCase(&fakeVisitorStorage{}, deps, &fakeLogStorage{}, &fakeMailQueue{})

	req := validRequest()
	req.DepartmentID = ptr.Ptr(int64(42))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDepartmentNotFound)
}

func TestRegisterVisitor_MailFailureDoesNotFailRegistration(t *testing.T) {
	storage := &fakeVisitorStorage{}
	mail := &fakeMailQueue{err: errors.New("redis down")}
	uc := newTestUseCase(storage, &fakeDepartmentStorage{}, &fakeLogStorage{}, mail)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.NotNil(t, storage.created)
}
