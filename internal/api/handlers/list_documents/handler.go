package list_documents

import (
	"net/http"

	"github.com/m04kA/SMC-BookingDocs/internal/api/handlers"
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

// Handle GET /documents
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /documents - Failed to list documents: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &ListDocumentsResponse{
		Success:   true,
		Count:     list.Count,
		Documents: list.Documents,
	})
}
