package reschedule_visitor

import (
	"time"

	"github.com/vmshq/VMS-VisitorService/pkg/types"
)

// Request модель запроса переноса визита
type Request struct {
	VisitorID string
	NewDate   time.Time        // Новая дата визита
	NewTime   types.TimeString // Новое время слота
}

// Response модель ответа с перенесенным визитом
type Response struct {
	ID                string
	Name              string
	VisitDate         time.Time
	VisitTime         types.TimeString
	OriginalVisitDate time.Time
	OriginalVisitTime types.TimeString
	Status            string
	QRCode            string // Новый код пропуска
}
