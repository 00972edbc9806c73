package print_document

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingDocs/internal/api/handlers"
	"github.com/m04kA/SMC-BookingDocs/internal/service/documents"
)

const (
	msgPrinted  = "Document information printed to console and sent to printer"
	msgNotFound = "Document not found"
)

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

// Handle GET /print/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	summary, err := h.service.Print(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrDocumentNotFound):
			h.logger.Warn("GET /print/{id} - Document not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /print/{id} - Failed to print document: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /print/{id} - Print requested: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, FromSummary(summary))
}
