package list_visitors

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	"github.com/vmshq/VMS-VisitorService/internal/service/visitors/models"
)

const defaultLimit = 100

// VisitorItem элемент списка посетителей
type VisitorItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Company      string `json:"company,omitempty"`
	Purpose      string `json:"purpose"`
	DepartmentID *int64 `json:"departmentId,omitempty"`
	VisitDate    string `json:"visitDate"`
	VisitTime    string `json:"visitTime"`
	HostName     string `json:"hostName,omitempty"`
	Status       string `json:"status"`
	CheckedInAt  string `json:"checkedInAt,omitempty"`
	CheckedOutAt string `json:"checkedOutAt,omitempty"`
}

// ListResponse HTTP response model
type ListResponse struct {
	Visitors []VisitorItem `json:"visitors"`
	Total    int           `json:"total"`
}

// ParseListRequest разбирает query-параметры фильтрации
func ParseListRequest(query url.Values) (*models.ListRequest, error) {
	req := &models.ListRequest{Limit: defaultLimit}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}
	if v := query.Get("purpose"); v != "" {
		req.Purpose = &v
	}
	if v := query.Get("departmentId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid departmentId %q", v)
		}
		req.DepartmentID = &id
	}
	if v := query.Get("startDate"); v != "" {
		d, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate %q", v)
		}
		req.StartDate = &d
	}
	if v := query.Get("endDate"); v != "" {
		d, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate %q", v)
		}
		req.EndDate = &d
	}
	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			return nil, fmt.Errorf("invalid limit %q", v)
		}
		req.Limit = limit
	}

	return req, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(list *models.VisitorListResponse) *ListResponse {
	resp := &ListResponse{
		Visitors: make([]VisitorItem, 0, len(list.Visitors)),
		Total:    list.Total,
	}
	for i := range list.Visitors {
		resp.Visitors = append(resp.Visitors, toItem(&list.Visitors[i]))
	}
	return resp
}

func toItem(v *models.VisitorResponse) VisitorItem {
	item := VisitorItem{
		ID:           v.ID,
		Name:         v.Name,
		Email:        v.Email,
		Company:      v.Company,
		Purpose:      v.Purpose,
		DepartmentID: v.DepartmentID,
		VisitDate:    v.VisitDate.Format(domain.DateFormat),
		VisitTime:    v.VisitTime.String(),
		HostName:     v.HostName,
		Status:       v.Status,
	}
	if v.CheckedInAt != nil {
		item.CheckedInAt = v.CheckedInAt.Format(time.RFC3339)
	}
	if v.CheckedOutAt != nil {
		item.CheckedOutAt = v.CheckedOutAt.Format(time.RFC3339)
	}
	return item
}
