package register_visitor

import (
	"time"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	registerVisitor "github.com/vmshq/VMS-VisitorService/internal/usecase/register_visitor"
	"github.com/vmshq/VMS-VisitorService/pkg/types"
)

// RegisterVisitorRequest HTTP request model
type RegisterVisitorRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Company         string `json:"company,omitempty"`
	VisitorType     string `json:"visitorType"`
	VisitorCategory string `json:"visitorCategory"`
	Purpose         string `json:"purpose"`
	DepartmentID    *int64 `json:"departmentId,omitempty"`
	VisitDate       string `json:"visitDate"` // "2026-09-01"
	VisitTime       string `json:"visitTime"` // "10:00"
	HostName        string `json:"hostName,omitempty"`
	HostEmail       string `json:"hostEmail,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// VisitorResponse HTTP response model
type VisitorResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	VisitDate string `json:"visitDate"`
	VisitTime string `json:"visitTime"`
	Status    string `json:"status"`
	QRCode    string `json:"qrCode"`
	Remaining int    `json:"remaining"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RegisterVisitorRequest) ToUseCaseRequest() (*registerVisitor.Request, error) {
	visitDate, err := time.Parse(domain.DateFormat, r.VisitDate)
	if err != nil {
		return nil, err
	}

	visitTime, err := types.NewTimeStringFromString(r.VisitTime)
	if err != nil {
		return nil, err
	}

	return &registerVisitor.Request{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Company:         r.Company,
		VisitorType:     r.VisitorType,
		VisitorCategory: r.VisitorCategory,
		Purpose:         r.Purpose,
		DepartmentID:    r.DepartmentID,
		VisitDate:       visitDate,
		VisitTime:       visitTime,
		HostName:        r.HostName,
		HostEmail:       r.HostEmail,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *registerVisitor.Response) *VisitorResponse {
	return &VisitorResponse{
		ID:        resp.ID,
		Name:      resp.Name,
		Email:     resp.Email,
		VisitDate: resp.VisitDate.Format(domain.DateFormat),
		VisitTime: resp.VisitTime.String(),
		Status:    resp.Status,
		QRCode:    resp.QRCode,
		Remaining: resp.Remaining,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
