package download_document

import (
	"errors"
	"mime"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingDocs/internal/api/handlers"
	"github.com/m04kA/SMC-BookingDocs/internal/domain"
	"github.com/m04kA/SMC-BookingDocs/internal/service/documents"
)

const msgFileNotFound = "File not found"

type Handler struct {
	service DocumentService
	logger  Logger
}

func NewHandler(service DocumentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /download/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	file, err := h.service.GetFile(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrDocumentNotFound), errors.Is(err, documents.ErrFileNotFound):
			h.logger.Warn("GET /download/{id} - File not found: id=%s, error=%v", id, err)
			handlers.RespondNotFound(w, msgFileNotFound)

		default:
			h.logger.Error("GET /download/{id} - Failed to get file: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	f, err := os.Open(file.FilePath)
	if err != nil {
		// файл мог быть удалён очисткой между проверкой и открытием
		h.logger.Warn("GET /download/{id} - Failed to open file %s: %v", file.FilePath, err)
		handlers.RespondNotFound(w, msgFileNotFound)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		h.logger.Error("GET /download/{id} - Failed to stat file %s: %v", file.FilePath, err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", domain.XLSXContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.FileName}))

	h.logger.Info("GET /download/{id} - Sending file: id=%s, file=%s", id, file.FileName)
	http.ServeContent(w, r, file.FileName, info.ModTime(), f)
}
