package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
)

type fakeSweepStorage struct {
	expired   []string
	completed []string
	expireErr error

	gotExpireBefore   time.Time
	gotCompleteBefore time.Time
	gotCheckedOutAt   time.Time
}

func (f *fakeSweepStorage) ExpirePending(_ context.Context, before time.Time) ([]string, error) {
	f.gotExpireBefore = before
	if f.expireErr != nil {
		return nil, f.expireErr
	}
	return f.expired, nil
}

func (f *fakeSweepStorage) CompleteVerified(_ context.Context, before time.Time, checkedOutAt time.Time) ([]string, error) {
	f.gotCompleteBefore = before
	f.gotCheckedOutAt = checkedOutAt
	return f.completed, nil
}

type fakeLogStorage struct {
	logs []*domain.VisitorLog
}

func (f *fakeLogStorage) Append(_ context.Context, log *domain.VisitorLog) (*domain.VisitorLog, error) {
	f.logs = append(f.logs, log)
	return log, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

func TestSweeper_ClosesOnlyDatesBeforeToday(t *testing.T) {
	storage := &fakeSweepStorage{}
	now := time.Date(2026, 9, 2, 15, 30, 0, 0, time.UTC)
	s := NewSweeper(storage, &fakeLogStorage{}, fixedTime{now}, time.Hour, nopLogger{})

	s.Sweep(context.Background())

	// Граница - полночь текущего дня: визиты сегодняшней даты еще активны
	wantBefore := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, wantBefore, storage.gotExpireBefore)
	assert.Equal(t, wantBefore, storage.gotCompleteBefore)
	assert.Equal(t, now, storage.gotCheckedOutAt)
}

func TestSweeper_AppendsLogsPerVisitor(t *testing.T) {
	storage := &fakeSweepStorage{
		expired:   []string{"visitor-1", "visitor-2"},
		completed: []string{"visitor-3"},
	}
	logs := &fakeLogStorage{}
	now := time.Date(2026, 9, 2, 3, 0, 0, 0, time.UTC)
	s := NewSweeper(storage, logs, fixedTime{now}, time.Hour, nopLogger{})

	s.Sweep(context.Background())

	assert.Len(t, logs.logs, 3)
	assert.Equal(t, "visitor-1", logs.logs[0].VisitorID)
	assert.Equal(t, domain.ActionExpired, logs.logs[0].Action)
	assert.Equal(t, domain.ActionExpired, logs.logs[1].Action)
	assert.Equal(t, "visitor-3", logs.logs[2].VisitorID)
	assert.Equal(t, domain.ActionCheckedOut, logs.logs[2].Action)
}

func TestSweeper_ExpireErrorDoesNotBlockCompletion(t *testing.T) {
	storage := &fakeSweepStorage{
		expireErr: errors.New("db down"),
		completed: []string{"visitor-1"},
	}
	logs := &fakeLogStorage{}
	s := NewSweeper(storage, logs, fixedTime{time.Date(2026, 9, 2, 3, 0, 0, 0, time.UTC)}, time.Hour, nopLogger{})

	s.Sweep(context.Background())

	assert.Len(t, logs.logs, 1)
	assert.Equal(t, "visitor-1", logs.logs[0].VisitorID)
}

func TestSweeper_StartStopsOnContextCancel(t *testing.T) {
	storage := &fakeSweepStorage{}
	s := NewSweeper(storage, &fakeLogStorage{}, &RealTimeProvider{}, time.Hour, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after context cancellation")
	}

	// Первый проход выполняется сразу при старте
	assert.False(t, storage.gotExpireBefore.IsZero())
}
