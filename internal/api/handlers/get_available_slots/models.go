package get_available_slots

import (
	"github.com/vmshq/VMS-VisitorService/internal/domain"
	getAvailableSlots "github.com/vmshq/VMS-VisitorService/internal/usecase/get_available_slots"
)

// SlotResponse состояние одного слота
type SlotResponse struct {
	VisitTime string `json:"visitTime"`
	Capacity  int    `json:"capacity"`
	Booked    int    `json:"booked"`
	Remaining int    `json:"remaining"`
	Available bool   `json:"available"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	VisitDate string         `json:"visitDate"`
	Slots     []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			VisitTime: s.StartTime.String(),
			Capacity:  s.Capacity,
			Booked:    s.Booked,
			Remaining: s.Remaining,
			Available: s.Available,
		})
	}

	return &SlotsResponse{
		VisitDate: resp.VisitDate.Format(domain.DateFormat),
		Slots:     slots,
	}
}
