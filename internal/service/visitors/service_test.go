package visitors

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	"github.com/vmshq/VMS-VisitorService/internal/infra/mailqueue"
	visitorRepo "github.com/vmshq/VMS-VisitorService/internal/infra/storage/visitor"
)

type fakeVisitorRepo struct {
	visitor *domain.Visitor

	updatedStatus *domain.VisitorStatus
	deletedID     string
}

func (f *fakeVisitorRepo) GetByID(_ context.Context, id string) (*domain.Visitor, error) {
	if f.visitor == nil || f.visitor.ID != id {
		return nil, visitorRepo.ErrVisitorNotFound
	}
	return f.visitor, nil
}

func (f *fakeVisitorRepo) List(context.Context, domain.VisitorsFilter) ([]*domain.Visitor, error) {
	return nil, nil
}

func (f *fakeVisitorRepo) Search(context.Context, string, int) ([]*domain.Visitor, error) {
	return nil, nil
}

func (f *fakeVisitorRepo) Complete(context.Context, string, time.Time) error {
	return nil
}

func (f *fakeVisitorRepo) UpdateStatus(_ context.Context, _ string, status domain.VisitorStatus) error {
	f.updatedStatus = &status
	return nil
}

func (f *fakeVisitorRepo) Delete(_ context.Context, id string) error {
	f.deletedID = id
	return nil
}

type fakeLogRepo struct {
	appended []*domain.VisitorLog
}

func (f *fakeLogRepo) Append(_ context.Context, log *domain.VisitorLog) (*domain.VisitorLog, error) {
	f.appended = append(f.appended, log)
	return log, nil
}

func (f *fakeLogRepo) GetByVisitorID(context.Context, string) ([]*domain.VisitorLog, error) {
	return nil, nil
}

type fakeDeptRepo struct{}

func (fakeDeptRepo) List(context.Context) ([]*domain.Department, error) { return nil, nil }

type fakeMailQueue struct {
	tasks []mailqueue.Task
}

func (f *fakeMailQueue) Enqueue(_ context.Context, task mailqueue.Task) error {
	f.tasks = append(f.tasks, task)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeVisitor(status domain.VisitorStatus) *domain.Visitor {
	return &domain.Visitor{
		ID:        "8d4f0c2e-1a7b-4e3d-9f5a-6b8c0d2e4f6a",
		Name:      "Anna Petrova",
		Email:     "anna@example.com",
		VisitDate: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
		VisitTime: "10:00",
		Status:    status,
	}
}

func newTestService(repo *fakeVisitorRepo, logs *fakeLogRepo) *Service {
	return NewService(repo, fakeDeptRepo{}, logs, &fakeMailQueue{}, nopLogger{})
}

func TestCancel_Success(t *testing.T) {
	repo := &fakeVisitorRepo{visitor: activeVisitor(domain.StatusPending)}
	logs := &fakeLogRepo{}
	svc := newTestService(repo, logs)

	resp, err := svc.Cancel(context.Background(), repo.visitor.ID)
	require.NoError(t, err)

	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusCancelled, *repo.updatedStatus)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)

	require.Len(t, logs.appended, 1)
	assert.Equal(t, domain.ActionCancelled, logs.appended[0].Action)
	assert.Equal(t, repo.visitor.ID, logs.appended[0].VisitorID)
}

func TestCancel_VerifiedVisitor(t *testing.T) {
	repo := &fakeVisitorRepo{visitor: activeVisitor(domain.StatusVerified)}
	svc := newTestService(repo, &fakeLogRepo{})

	_, err := svc.Cancel(context.Background(), repo.visitor.ID)
	require.NoError(t, err)

	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusCancelled, *repo.updatedStatus)
}

func TestCancel_NotCancellable(t *testing.T) {
	for _, status := range []domain.VisitorStatus{
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusExpired,
	} {
		t.Run(string(status), func(t *testing.T) {
			repo := &fakeVisitorRepo{visitor: activeVisitor(status)}
			svc := newTestService(repo, &fakeLogRepo{})

			_, err := svc.Cancel(context.Background(), repo.visitor.ID)
			assert.ErrorIs(t, err, ErrNotCancellable)
			assert.Nil(t, repo.updatedStatus)
		})
	}
}

func TestCancel_NotFound(t *testing.T) {
	svc := newTestService(&fakeVisitorRepo{}, &fakeLogRepo{})

	_, err := svc.Cancel(context.Background(), "missing-id")
	assert.ErrorIs(t, err, ErrVisitorNotFound)
}

func TestDelete_AppendsAuditLog(t *testing.T) {
	repo := &fakeVisitorRepo{visitor: activeVisitor(domain.StatusPending)}
	logs := &fakeLogRepo{}
	svc := newTestService(repo, logs)

	err := svc.Delete(context.Background(), repo.visitor.ID)
	require.NoError(t, err)

	assert.Equal(t, repo.visitor.ID, repo.deletedID)

	// Запись удалена, но след в журнале остается
	require.Len(t, logs.appended, 1)
	assert.Equal(t, domain.ActionDeleted, logs.appended[0].Action)
	assert.Contains(t, logs.appended[0].Notes, "Anna Petrova")
}

func TestDelete_NotFound(t *testing.T) {
	logs := &fakeLogRepo{}
	svc := newTestService(&fakeVisitorRepo{}, logs)

	err := svc.Delete(context.Background(), "missing-id")
	assert.ErrorIs(t, err, ErrVisitorNotFound)
	assert.Empty(t, logs.appended)
}
