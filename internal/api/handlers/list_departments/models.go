package list_departments

import "github.com/vmshq/VMS-VisitorService/internal/service/visitors/models"

// DepartmentItem элемент справочника отделов
type DepartmentItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ListResponse HTTP response model
type ListResponse struct {
	Departments []DepartmentItem `json:"departments"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(deps []models.DepartmentResponse) *ListResponse {
	resp := &ListResponse{Departments: make([]DepartmentItem, 0, len(deps))}
	for _, d := range deps {
		resp.Departments = append(resp.Departments, DepartmentItem{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
		})
	}
	return resp
}
