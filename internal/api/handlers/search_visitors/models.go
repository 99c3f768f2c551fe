package search_visitors

import (
	"github.com/vmshq/VMS-VisitorService/internal/domain"
	"github.com/vmshq/VMS-VisitorService/internal/service/visitors/models"
)

const defaultLimit = 50

// VisitorItem элемент результатов поиска
type VisitorItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Company   string `json:"company,omitempty"`
	VisitDate string `json:"visitDate"`
	VisitTime string `json:"visitTime"`
	Status    string `json:"status"`
	QRCode    string `json:"qrCode"`
}

// SearchResponse HTTP response model
type SearchResponse struct {
	Visitors []VisitorItem `json:"visitors"`
	Total    int           `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(list *models.VisitorListResponse) *SearchResponse {
	resp := &SearchResponse{
		Visitors: make([]VisitorItem, 0, len(list.Visitors)),
		Total:    list.Total,
	}
	for i := range list.Visitors {
		v := &list.Visitors[i]
		resp.Visitors = append(resp.Visitors, VisitorItem{
			ID:        v.ID,
			Name:      v.Name,
			Email:     v.Email,
			Company:   v.Company,
			VisitDate: v.VisitDate.Format(domain.DateFormat),
			VisitTime: v.VisitTime.String(),
			Status:    v.Status,
			QRCode:    v.QRCode,
		})
	}
	return resp
}
