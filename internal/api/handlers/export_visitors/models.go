package export_visitors

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	"github.com/vmshq/VMS-VisitorService/internal/service/visitors/models"
)

// Выгрузка не ограничивается постраничным лимитом списка
const exportLimit = 10000

// ParseExportRequest разбирает query-параметры фильтрации выгрузки
func ParseExportRequest(query url.Values) (*models.ListRequest, error) {
	req := &models.ListRequest{Limit: exportLimit}

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

	return req, nil
}
