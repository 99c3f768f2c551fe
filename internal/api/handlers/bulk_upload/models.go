package bulk_upload

import (
	bulkUpload "github.com/vmshq/VMS-VisitorService/internal/usecase/bulk_upload"
)

// RowResultResponse результат обработки одной строки
type RowResultResponse struct {
	Row       int    `json:"row"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Created   bool   `json:"created"`
	VisitorID string `json:"visitorId,omitempty"`
	QRCode    string `json:"qrCode,omitempty"`
	ErrorKind string `json:"kind,omitempty"`
	Error     string `json:"error,omitempty"`
}

// BulkUploadResponse HTTP response model
type BulkUploadResponse struct {
	Total   int                 `json:"total"`
	Created int                 `json:"created"`
	Failed  int                 `json:"failed"`
	Results []RowResultResponse `json:"results"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bulkUpload.Response) *BulkUploadResponse {
	results := make([]RowResultResponse, 0, len(resp.Results))
	for _, r := range resp.Results {
		results = append(results, RowResultResponse{
			Row:       r.Row,
			Name:      r.Name,
			Email:     r.Email,
			Created:   r.Created,
			VisitorID: r.VisitorID,
			QRCode:    r.QRCode,
			ErrorKind: r.ErrorKind,
			Error:     r.Error,
		})
	}

	return &BulkUploadResponse{
		Total:   resp.Total,
		Created: resp.Created,
		Failed:  resp.Failed,
		Results: results,
	}
}
