package verify_qr

import (
	"time"

	"github.com/vmshq/VMS-VisitorService/pkg/types"
)

// Request модель запроса проверки пропуска
type Request struct {
	QRCode string
}

// Response данные посетителя после успешного check-in
type Response struct {
	ID          string
	Name        string
	Company     string
	VisitDate   time.Time
	VisitTime   types.TimeString
	HostName    string
	Status      string
	CheckedInAt time.Time
}
