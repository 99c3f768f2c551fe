package bulk_template

import (
	"net/http"

	"github.com/vmshq/VMS-VisitorService/internal/api/handlers"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service ExportService
	logger  Logger
}

func NewHandler(service ExportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/visitors/bulk-template
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.BulkTemplate()
	if err != nil {
		h.logger.Error("GET /visitors/bulk-template - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", `attachment; filename="bulk-upload-template.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
