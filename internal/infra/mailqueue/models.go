package mailqueue

import "time"

// Виды email-задач
const (
	KindConfirmation = "confirmation" // письмо с QR после регистрации
	KindReschedule   = "reschedule"   // письмо с новым QR после переноса
	KindResend       = "resend"       // повторная отправка по запросу персонала
)

// Task задача на отправку письма посетителю
// Письмо рендерится воркером по VisitorID: в очереди лежит только ссылка,
// чтобы письмо всегда собиралось из актуального состояния записи
type Task struct {
	Kind      string    `json:"kind"`
	VisitorID string    `json:"visitor_id"`
	Attempt   int       `json:"attempt"`
	LastError string    `json:"last_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
