package cancel_visitor

import (
	"github.com/vmshq/VMS-VisitorService/internal/domain"
	"github.com/vmshq/VMS-VisitorService/internal/service/visitors/models"
)

// CancelResponse HTTP response model
type CancelResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	VisitDate string `json:"visitDate"`
	VisitTime string `json:"visitTime"`
	Status    string `json:"status"`
}

// FromServiceResponse конвертирует представление сервиса в HTTP response
func FromServiceResponse(v *models.VisitorResponse) *CancelResponse {
	return &CancelResponse{
		ID:        v.ID,
		Name:      v.Name,
		VisitDate: v.VisitDate.Format(domain.DateFormat),
		VisitTime: v.VisitTime.String(),
		Status:    v.Status,
	}
}
