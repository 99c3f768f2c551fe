package complete_visitor

import (
	"time"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	"github.com/vmshq/VMS-VisitorService/internal/service/visitors/models"
)

// CompleteResponse HTTP response model
type CompleteResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	VisitDate    string `json:"visitDate"`
	VisitTime    string `json:"visitTime"`
	Status       string `json:"status"`
	CheckedOutAt string `json:"checkedOutAt,omitempty"`
}

// FromServiceResponse конвертирует представление сервиса в HTTP response
func FromServiceResponse(v *models.VisitorResponse) *CompleteResponse {
	resp := &CompleteResponse{
		ID:        v.ID,
		Name:      v.Name,
		VisitDate: v.VisitDate.Format(domain.DateFormat),
		VisitTime: v.VisitTime.String(),
		Status:    v.Status,
	}
	if v.CheckedOutAt != nil {
		resp.CheckedOutAt = v.CheckedOutAt.Format(time.RFC3339)
	}
	return resp
}
