package domain

// Slot capacity and business hours
const (
	// SlotCapacity максимум активных бронирований на один часовой слот
	SlotCapacity = 20

	// BusinessStartHour час начала приема посетителей (включительно)
	BusinessStartHour = 9

	// BusinessEndHour час окончания приема посетителей (слот должен закончиться не позже)
	BusinessEndHour = 17

	// MaxBulkUploadRows максимум строк, принимаемых за одну массовую загрузку
	MaxBulkUploadRows = 20

	// MinBookingNoticeMinutes минимальный запас до начала визита при бронировании на сегодня
	MinBookingNoticeMinutes = 30
)

// Business validation constants
const (
	MaxNameLength    = 255
	MaxCompanyLength = 255
	MaxPhoneLength   = 20
	MaxNotesLength   = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих место в слоте
// Используется для фильтрации при подсчёте доступных слотов
var InactiveStatuses = []VisitorStatus{
	StatusCompleted,
	StatusCancelled,
	StatusExpired,
}

// ActiveStatuses список статусов, занимающих место в слоте
var ActiveStatuses = []VisitorStatus{
	StatusPending,
	StatusVerified,
}
