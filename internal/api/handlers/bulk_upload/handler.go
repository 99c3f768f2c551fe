package bulk_upload

import (
	"errors"
	"io"
	"net/http"

	"github.com/vmshq/VMS-VisitorService/internal/api/handlers"
	bulkUpload "github.com/vmshq/VMS-VisitorService/internal/usecase/bulk_upload"
)

const (
	msgMissingFile = "ожидается .xlsx файл в поле file"
	msgInvalidFile = "файл не читается или не содержит строк с данными"
	msgFileTooBig  = "файл слишком большой"
)

// Лимит размера загружаемого файла
const maxUploadBytes = 5 << 20 // 5 MiB

type Handler struct {
	useCase BulkUploadUseCase
	logger  Logger
}

func NewHandler(useCase BulkUploadUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/visitors/bulk-upload (multipart/form-data, поле file)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.logger.Warn("POST /visitors/bulk-upload - Failed to parse multipart form: %v", err)
		handlers.RespondBadRequest(w, msgFileTooBig)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.logger.Warn("POST /visitors/bulk-upload - Missing file: %v", err)
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("POST /visitors/bulk-upload - Failed to read file: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &bulkUpload.Request{FileData: data})
	if err != nil {
		if errors.Is(err, bulkUpload.ErrInvalidFile) {
			h.logger.Warn("POST /visitors/bulk-upload - Invalid file: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFile)
			return
		}
		h.logger.Error("POST /visitors/bulk-upload - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /visitors/bulk-upload - Processed %d rows: created=%d, failed=%d",
		result.Total, result.Created, result.Failed)

	// 207: часть строк могла провалиться при успешной обработке файла
	status := http.StatusCreated
	if result.Failed > 0 {
		status = http.StatusMultiStatus
	}
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
