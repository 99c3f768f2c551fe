package domain

import (
	"time"

	"github.com/vmshq/VMS-VisitorService/pkg/types"
)

// SlotAvailability represents the load of one hour-wide booking slot
type SlotAvailability struct {
	VisitDate time.Time
	StartTime types.TimeString
	Capacity  int // Fixed ceiling per slot
	Booked    int // Active bookings counted in the slot
	Remaining int // Never negative
}

// IsFull returns true if the slot has no remaining capacity
func (s *SlotAvailability) IsFull() bool {
	return s.Remaining <= 0
}

// NewSlotAvailability derives availability from a booked count,
// clamping remaining at zero
func NewSlotAvailability(date time.Time, start types.TimeString, booked int) SlotAvailability {
	remaining := SlotCapacity - booked
	if remaining < 0 {
		remaining = 0
	}
	return SlotAvailability{
		VisitDate: date,
		StartTime: start,
		Capacity:  SlotCapacity,
		Booked:    booked,
		Remaining: remaining,
	}
}

// IsWeekday возвращает true для рабочего дня (понедельник-пятница)
func IsWeekday(date time.Time) bool {
	wd := date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// IsBusinessHour возвращает true, если час слота лежит в рабочих часах
// Слот занимает целый час, поэтому последний допустимый старт BusinessEndHour-1
func IsBusinessHour(hour int) bool {
	return hour >= BusinessStartHour && hour < BusinessEndHour
}

// BusinessHours возвращает список стартовых часов всех слотов дня
func BusinessHours() []int {
	hours := make([]int, 0, BusinessEndHour-BusinessStartHour)
	for h := BusinessStartHour; h < BusinessEndHour; h++ {
		hours = append(hours, h)
	}
	return hours
}
