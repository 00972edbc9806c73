package cleanup_documents

import (
	"net/http"

	"github.com/m04kA/SMC-BookingDocs/internal/api/handlers"
)

const (
	msgCleanupDone   = "Cleanup completed successfully"
	msgCleanupFailed = "Cleanup failed: "
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

// Handle POST /cleanup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Cleanup(r.Context())
	if err != nil {
		h.logger.Error("POST /cleanup - Cleanup failed: %v", err)
		handlers.RespondInternalErrorMessage(w, msgCleanupFailed+err.Error())
		return
	}

	h.logger.Info("POST /cleanup - Cleanup completed: evicted=%d, orphans=%d, remaining=%d",
		res.Evicted, res.Orphans, res.Remaining)
	handlers.RespondJSON(w, http.StatusOK, &CleanupResponse{
		Success:            true,
		Message:            msgCleanupDone,
		RemainingDocuments: res.Remaining,
	})
}
