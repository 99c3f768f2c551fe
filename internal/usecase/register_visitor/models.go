package register_visitor

import (
	"time"

	"github.com/vmshq/VMS-VisitorService/pkg/types"
)

// Request модель запроса на регистрацию посетителя
type Request struct {
	Name            string
	Email           string
	Phone           string
	Company         string
	VisitorType     string // professional | student
	VisitorCategory string // government | academic | industry | other
	Purpose         string
	DepartmentID    *int64
	VisitDate       time.Time        // Дата визита (без времени)
	VisitTime       types.TimeString // Время слота (например, "10:00")
	HostName        string
	HostEmail       string
	Notes           string
}

// Response модель ответа с созданной записью
type Response struct {
	ID        string // UUID записи
	Name      string
	Email     string
	VisitDate time.Time
	VisitTime types.TimeString
	Status    string
	QRCode    string // Код пропуска
	Remaining int    // Осталось мест в слоте после регистрации
	CreatedAt time.Time
}
