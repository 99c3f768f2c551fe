package get_visitor

import (
	"time"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	"github.com/vmshq/VMS-VisitorService/internal/service/visitors/models"
)

// LogEntryResponse запись журнала действий
type LogEntryResponse struct {
	Action    string `json:"action"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// VisitorResponse HTTP response model (детальный просмотр)
type VisitorResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Company         string `json:"company,omitempty"`
	VisitorType     string `json:"visitorType"`
	VisitorCategory string `json:"visitorCategory"`
	Purpose         string `json:"purpose"`
	DepartmentID    *int64 `json:"departmentId,omitempty"`
	VisitDate       string `json:"visitDate"`
	VisitTime       string `json:"visitTime"`
	HostName        string `json:"hostName,omitempty"`
	HostEmail       string `json:"hostEmail,omitempty"`
	Status          string `json:"status"`
	QRCode          string `json:"qrCode"`
	CheckedInAt     string `json:"checkedInAt,omitempty"`
	CheckedOutAt    string `json:"checkedOutAt,omitempty"`
	Notes           string `json:"notes,omitempty"`

	IsRescheduled     bool   `json:"isRescheduled"`
	OriginalVisitDate string `json:"originalVisitDate,omitempty"`
	OriginalVisitTime string `json:"originalVisitTime,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`

	Logs []LogEntryResponse `json:"logs,omitempty"`
}

// FromServiceResponse конвертирует представление сервиса в HTTP response
func FromServiceResponse(v *models.VisitorResponse) *VisitorResponse {
	resp := &VisitorResponse{
		ID:              v.ID,
		Name:            v.Name,
		Email:           v.Email,
		Phone:           v.Phone,
		Company:         v.Company,
		VisitorType:     v.VisitorType,
		VisitorCategory: v.VisitorCategory,
		Purpose:         v.Purpose,
		DepartmentID:    v.DepartmentID,
		VisitDate:       v.VisitDate.Format(domain.DateFormat),
		VisitTime:       v.VisitTime.String(),
		HostName:        v.HostName,
		HostEmail:       v.HostEmail,
		Status:          v.Status,
		QRCode:          v.QRCode,
		Notes:           v.Notes,
		IsRescheduled:   v.IsRescheduled,
		CreatedAt:       v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       v.UpdatedAt.Format(time.RFC3339),
	}

	if v.CheckedInAt != nil {
		resp.CheckedInAt = v.CheckedInAt.Format(time.RFC3339)
	}
	if v.CheckedOutAt != nil {
		resp.CheckedOutAt = v.CheckedOutAt.Format(time.RFC3339)
	}
	if v.OriginalVisitDate != nil {
		resp.OriginalVisitDate = v.OriginalVisitDate.Format(domain.DateFormat)
	}
	if v.OriginalVisitTime != nil {
		resp.OriginalVisitTime = v.OriginalVisitTime.String()
	}

	for _, l := range v.Logs {
		resp.Logs = append(resp.Logs, LogEntryResponse{
			Action:    l.Action,
			Notes:     l.Notes,
			CreatedAt: l.CreatedAt.Format(time.RFC3339),
		})
	}

	return resp
}
