package export_visitors

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/vmshq/VMS-VisitorService/internal/api/handlers"
	"github.com/vmshq/VMS-VisitorService/internal/service/export"
)

const (
	msgInvalidQueryParams = "некорректные параметры фильтрации"

	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

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

// Handle GET /api/v1/visitors/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseExportRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /visitors/export - Invalid query params: %v", err)
		handlers.RespondErrorKind(w, http.StatusBadRequest, handlers.KindValidationError, msgInvalidQueryParams)
		return
	}

	data, err := h.service.Visitors(r.Context(), req)
	if err != nil {
		if errors.Is(err, export.ErrInvalidInput) {
			handlers.RespondErrorKind(w, http.StatusBadRequest, handlers.KindValidationError, msgInvalidQueryParams)
			return
		}
		h.logger.Error("GET /visitors/export - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	filename := fmt.Sprintf("visitors-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
