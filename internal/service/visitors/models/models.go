package models

import (
	"fmt"
	"time"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	"github.com/vmshq/VMS-VisitorService/pkg/types"
)

// ListRequest параметры фильтрации списка посетителей
type ListRequest struct {
	Status       *string
	DepartmentID *int64
	Purpose      *string
	StartDate    *time.Time
	EndDate      *time.Time
	Limit        int
}

// ToDomainFilter конвертирует запрос в доменный фильтр с валидацией перечислений
func (r *ListRequest) ToDomainFilter() (domain.VisitorsFilter, error) {
	filter := domain.VisitorsFilter{
		DepartmentID: r.DepartmentID,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Limit:        r.Limit,
	}

	if r.Status != nil {
		status := domain.VisitorStatus(*r.Status)
		if !domain.ValidStatus(status) {
			return filter, fmt.Errorf("invalid status %q", *r.Status)
		}
		filter.Status = &status
	}

	if r.Purpose != nil {
		purpose := domain.VisitPurpose(*r.Purpose)
		if !domain.ValidPurpose(purpose) {
			return filter, fmt.Errorf("invalid purpose %q", *r.Purpose)
		}
		filter.Purpose = &purpose
	}

	return filter, nil
}

// VisitorResponse представление посетителя для персонала
type VisitorResponse struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	Company         string
	VisitorType     string
	VisitorCategory string
	Purpose         string
	DepartmentID    *int64
	VisitDate       time.Time
	VisitTime       types.TimeString
	HostName        string
	HostEmail       string
	Status          string
	QRCode          string
	CheckedInAt     *time.Time
	CheckedOutAt    *time.Time
	Notes           string

	IsRescheduled     bool
	OriginalVisitDate *time.Time
	OriginalVisitTime *types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time

	Logs []LogEntry // Журнал действий, заполняется только в детальном просмотре
}

// LogEntry запись журнала действий
type LogEntry struct {
	Action    string
	Notes     string
	CreatedAt time.Time
}

// VisitorListResponse список посетителей
type VisitorListResponse struct {
	Visitors []VisitorResponse
	Total    int
}

// FromDomainVisitor конвертирует доменную модель в представление
func FromDomainVisitor(v *domain.Visitor) *VisitorResponse {
	return &VisitorResponse{
		ID:                v.ID,
		Name:              v.Name,
		Email:             v.Email,
		Phone:             v.Phone,
		Company:           v.Company,
		VisitorType:       string(v.VisitorType),
		VisitorCategory:   string(v.VisitorCategory),
		Purpose:           string(v.Purpose),
		DepartmentID:      v.DepartmentID,
		VisitDate:         v.VisitDate,
		VisitTime:         v.VisitTime,
		HostName:          v.HostName,
		HostEmail:         v.HostEmail,
		Status:            string(v.Status),
		QRCode:            v.QRCode,
		CheckedInAt:       v.CheckedInAt,
		CheckedOutAt:      v.CheckedOutAt,
		Notes:             v.Notes,
		IsRescheduled:     v.IsRescheduled,
		OriginalVisitDate: v.OriginalVisitDate,
		OriginalVisitTime: v.OriginalVisitTime,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

// FromDomainVisitorList конвертирует список доменных моделей
func FromDomainVisitorList(visitors []*domain.Visitor) *VisitorListResponse {
	result := &VisitorListResponse{
		Visitors: make([]VisitorResponse, 0, len(visitors)),
		Total:    len(visitors),
	}
	for _, v := range visitors {
		result.Visitors = append(result.Visitors, *FromDomainVisitor(v))
	}
	return result
}

// FromDomainLogs конвертирует записи журнала
func FromDomainLogs(logs []*domain.VisitorLog) []LogEntry {
	entries := make([]LogEntry, 0, len(logs))
	for _, l := range logs {
		entries = append(entries, LogEntry{
			Action:    string(l.Action),
			Notes:     l.Notes,
			CreatedAt: l.CreatedAt,
		})
	}
	return entries
}

// DepartmentResponse представление отдела
type DepartmentResponse struct {
	ID          int64
	Name        string
	Description string
}

// FromDomainDepartments конвертирует список отделов
func FromDomainDepartments(deps []*domain.Department) []DepartmentResponse {
	result := make([]DepartmentResponse, 0, len(deps))
	for _, d := range deps {
		result = append(result, DepartmentResponse{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
		})
	}
	return result
}
