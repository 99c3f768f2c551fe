package verify_qr

import (
	"time"

	"github.com/vmshq/VMS-VisitorService/internal/domain"
	verifyQR "github.com/vmshq/VMS-VisitorService/internal/usecase/verify_qr"
)

// VerifyQRRequest HTTP request model
type VerifyQRRequest struct {
	QRCode string `json:"qrCode"`
}

// VerifyQRResponse HTTP response model
type VerifyQRResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Company     string `json:"company,omitempty"`
	VisitDate   string `json:"visitDate"`
	VisitTime   string `json:"visitTime"`
	HostName    string `json:"hostName,omitempty"`
	Status      string `json:"status"`
	CheckedInAt string `json:"checkedInAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *verifyQR.Response) *VerifyQRResponse {
	return &VerifyQRResponse{
		ID:          resp.ID,
		Name:        resp.Name,
		Company:     resp.Company,
		VisitDate:   resp.VisitDate.Format(domain.DateFormat),
		VisitTime:   resp.VisitTime.String(),
		HostName:    resp.HostName,
		Status:      resp.Status,
		CheckedInAt: resp.CheckedInAt.Format(time.RFC3339),
	}
}
