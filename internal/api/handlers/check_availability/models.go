package check_availability

import (
	"github.com/vmshq/VMS-VisitorService/internal/domain"
	checkAvailability "github.com/vmshq/VMS-VisitorService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	VisitDate string `json:"visitDate"`
	VisitTime string `json:"visitTime"`
	Capacity  int    `json:"capacity"`
	Booked    int    `json:"booked"`
	Remaining int    `json:"remaining"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		VisitDate: resp.VisitDate.Format(domain.DateFormat),
		VisitTime: resp.StartTime.String(),
		Capacity:  resp.Capacity,
		Booked:    resp.Booked,
		Remaining: resp.Remaining,
		Available: resp.Available,
	}
}
