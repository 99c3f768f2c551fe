package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSlotAvailability(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC) // вторник

	t.Run("empty slot", func(t *testing.T) {
		slot := NewSlotAvailability(date, "10:00", 0)
		assert.Equal(t, SlotCapacity, slot.Capacity)
		assert.Equal(t, SlotCapacity, slot.Remaining)
		assert.False(t, slot.IsFull())
	})

	t.Run("one spot left", func(t *testing.T) {
		slot := NewSlotAvailability(date, "10:00", SlotCapacity-1)
		assert.Equal(t, 1, slot.Remaining)
		assert.False(t, slot.IsFull())
	})

	t.Run("full slot", func(t *testing.T) {
		slot := NewSlotAvailability(date, "10:00", SlotCapacity)
		assert.Equal(t, 0, slot.Remaining)
		assert.True(t, slot.IsFull())
	})

	t.Run("overbooked clamps at zero", func(t *testing.T) {
		slot := NewSlotAvailability(date, "10:00", SlotCapacity+5)
		assert.Equal(t, 0, slot.Remaining)
		assert.True(t, slot.IsFull())
	})
}

func TestIsWeekday(t *testing.T) {
	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	friday := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsWeekday(monday))
	assert.True(t, IsWeekday(friday))
	assert.False(t, IsWeekday(saturday))
	assert.False(t, IsWeekday(sunday))
}

func TestIsBusinessHour(t *testing.T) {
	assert.False(t, IsBusinessHour(8))
	assert.True(t, IsBusinessHour(9))
	assert.True(t, IsBusinessHour(16)) // последний слот 16:00-17:00
	assert.False(t, IsBusinessHour(17))
	assert.False(t, IsBusinessHour(0))
	assert.False(t, IsBusinessHour(23))
}

func TestBusinessHours(t *testing.T) {
	hours := BusinessHours()

	assert.Len(t, hours, BusinessEndHour-BusinessStartHour)
	assert.Equal(t, BusinessStartHour, hours[0])
	assert.Equal(t, BusinessEndHour-1, hours[len(hours)-1])
}
