package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
)

type fakeVisitorStorage struct {
	counts map[string]int
}

func (f *fakeVisitorStorage) SlotCounts(_ context.Context, _ time.Time) (map[string]int, error) {
	return f.counts, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

// вторник 2026-09-01, 08:00
var testNow = time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

func newTestUseCase(storage *fakeVisitorStorage) *UseCase {
	uc := NewUseCase(storage, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func TestGetAvailableSlots(t *testing.T) {
	storage := &fakeVisitorStorage{counts: map[string]int{
		"09:00": 3,
		"12:00": domain.SlotCapacity,
	}}
	uc := newTestUseCase(storage)

	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC) // среда
	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	require.Len(t, resp.Slots, domain.BusinessEndHour-domain.BusinessStartHour)

	bySlot := make(map[string]Slot, len(resp.Slots))
	for _, s := range resp.Slots {
		bySlot[s.StartTime.String()] = s
	}

	assert.Equal(t, 3, bySlot["09:00"].Booked)
	assert.True(t, bySlot["09:00"].Available)

	assert.Equal(t, domain.SlotCapacity, bySlot["12:00"].Booked)
	assert.False(t, bySlot["12:00"].Available)

	// Часы без записей отдаются пустыми, а не пропускаются
	assert.Equal(t, 0, bySlot["16:00"].Booked)
	assert.Equal(t, domain.SlotCapacity, bySlot["16:00"].Remaining)

	// Все слоты укладываются в рабочие часы
	_, hasEarly := bySlot["08:00"]
	_, hasLate := bySlot["17:00"]
	assert.False(t, hasEarly)
	assert.False(t, hasLate)
}

func TestGetAvailableSlots_Weekend(t *testing.T) {
	uc := newTestUseCase(&fakeVisitorStorage{})

	saturday := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{Date: saturday})
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestGetAvailableSlots_PastDate(t *testing.T) {
	uc := newTestUseCase(&fakeVisitorStorage{})

	// Прошедший будний день недоступен для просмотра занятости
	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{Date: monday})
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestGetAvailableSlots_TodayIsNotPast(t *testing.T) {
	uc := newTestUseCase(&fakeVisitorStorage{counts: map[string]int{"09:00": 1}})

	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{Date: today})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, domain.BusinessEndHour-domain.BusinessStartHour)
}

func TestGetAvailableSlots_MissingDate(t *testing.T) {
	uc := newTestUseCase(&fakeVisitorStorage{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
