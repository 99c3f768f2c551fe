package check_availability

import (
	"time"

	"github.com/vmshq/VMS-VisitorService/pkg/types"
)

// Request модель запроса проверки доступности слота
type Request struct {
	Date      time.Time        // Дата визита (без времени)
	StartTime types.TimeString // Время слота (например, "10:00")
}

// Response модель ответа с состоянием слота
type Response struct {
	VisitDate time.Time        // Дата визита
	StartTime types.TimeString // Время слота
	Capacity  int              // Вместимость слота
	Booked    int              // Занято активными записями
	Remaining int              // Осталось мест
	Available bool             // Есть ли хотя бы одно место
}
