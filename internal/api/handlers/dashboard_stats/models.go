package dashboard_stats

import "github.com/vmshq/VMS-VisitorService/internal/service/dashboard/models"

// DepartmentStat визиты по отделу
type DepartmentStat struct {
	DepartmentID   *int64 `json:"departmentId,omitempty"`
	DepartmentName string `json:"departmentName"`
	Count          int    `json:"count"`
}

// StatsResponse HTTP response model
type StatsResponse struct {
	Total        int              `json:"total"`
	ByStatus     map[string]int   `json:"byStatus"`
	Today        int              `json:"today"`
	ThisMonth    int              `json:"thisMonth"`
	ByPurpose    map[string]int   `json:"byPurpose"`
	ByDepartment []DepartmentStat `json:"byDepartment"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(stats *models.StatsResponse) *StatsResponse {
	resp := &StatsResponse{
		Total:        stats.Total,
		ByStatus:     stats.ByStatus,
		Today:        stats.Today,
		ThisMonth:    stats.ThisMonth,
		ByPurpose:    stats.ByPurpose,
		ByDepartment: make([]DepartmentStat, 0, len(stats.ByDepartment)),
	}
	for _, d := range stats.ByDepartment {
		resp.ByDepartment = append(resp.ByDepartment, DepartmentStat{
			DepartmentID:   d.DepartmentID,
			DepartmentName: d.DepartmentName,
			Count:          d.Count,
		})
	}
	return resp
}
