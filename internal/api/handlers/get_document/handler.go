package get_document

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingDocs/internal/api/handlers"
	"github.com/m04kA/SMC-BookingDocs/internal/service/documents"
)

const msgNotFound = "Document not found"

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

// Handle GET /documents/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	doc, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrDocumentNotFound):
			h.logger.Warn("GET /documents/{id} - Document not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /documents/{id} - Failed to get document: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &GetDocumentResponse{Success: true, Document: doc})
}
