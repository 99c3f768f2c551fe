package dashboard_trends

import (
	"github.com/vmshq/VMS-VisitorService/internal/domain"
	"github.com/vmshq/VMS-VisitorService/internal/service/dashboard/models"
)

// TrendItem число визитов на дату
type TrendItem struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// TrendsResponse HTTP response model
type TrendsResponse struct {
	Days  int         `json:"days"`
	Items []TrendItem `json:"items"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(trends *models.TrendsResponse) *TrendsResponse {
	resp := &TrendsResponse{
		Days:  trends.Days,
		Items: make([]TrendItem, 0, len(trends.Items)),
	}
	for _, item := range trends.Items {
		resp.Items = append(resp.Items, TrendItem{
			Date:  item.Date.Format(domain.DateFormat),
			Count: item.Count,
		})
	}
	return resp
}
