package get_available_slots

import (
	"time"

	"github.com/vmshq/VMS-VisitorService/pkg/types"
)

// Request модель запроса списка слотов на дату
type Request struct {
	Date time.Time // Дата визита (без времени)
}

// Slot состояние одного часового слота
type Slot struct {
	StartTime types.TimeString // Начало слота
	Capacity  int              // Вместимость
	Booked    int              // Занято
	Remaining int              // Осталось мест
	Available bool             // Есть ли свободные места
}

// Response модель ответа со всеми слотами дня
type Response struct {
	VisitDate time.Time
	Slots     []Slot
}
