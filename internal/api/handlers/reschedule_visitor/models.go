package reschedule_visitor

import (
	"time"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	rescheduleVisitor "github.com/vmshq/VMS-VisitorService/internal/usecase/reschedule_visitor"
	"github.com/vmshq/VMS-VisitorService/pkg/types"
)

// RescheduleRequest HTTP request model
type RescheduleRequest struct {
	NewDate string `json:"newDate"` // "2026-09-02"
	NewTime string `json:"newTime"` // "11:00"
}

// RescheduleResponse HTTP response model
type RescheduleResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	VisitDate         string `json:"visitDate"`
	VisitTime         string `json:"visitTime"`
	OriginalVisitDate string `json:"originalVisitDate"`
	OriginalVisitTime string `json:"originalVisitTime"`
	Status            string `json:"status"`
	QRCode            string `json:"qrCode"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleRequest) ToUseCaseRequest(visitorID string) (*rescheduleVisitor.Request, error) {
	newDate, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return nil, err
	}

	newTime, err := types.NewTimeStringFromString(r.NewTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleVisitor.Request{
		VisitorID: visitorID,
		NewDate:   newDate,
		NewTime:   newTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleVisitor.Response) *RescheduleResponse {
	return &RescheduleResponse{
		ID:                resp.ID,
		Name:              resp.Name,
		VisitDate:         resp.VisitDate.Format(domain.DateFormat),
		VisitTime:         resp.VisitTime.String(),
		OriginalVisitDate: resp.OriginalVisitDate.Format(domain.DateFormat),
		OriginalVisitTime: resp.OriginalVisitTime.String(),
		Status:            resp.Status,
		QRCode:            resp.QRCode,
	}
}
