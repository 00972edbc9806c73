package check_template

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingDocs/internal/api/handlers"
	"github.com/m04kA/SMC-BookingDocs/internal/infra/spreadsheet"
)

const (
	msgTemplateLoaded   = "Template found and loaded successfully"
	msgTemplateNotFound = "Template file not found at: "
	msgTemplateError    = "Error loading template: "
)

type Handler struct {
	inspector TemplateInspector
	logger    Logger
}

func NewHandler(inspector TemplateInspector, logger Logger) *Handler {
	return &Handler{
		inspector: inspector,
		logger:    logger,
	}
}

// Handle GET /check-template
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	info, err := h.inspector.InspectTemplate()
	if err != nil {
		switch {
		case errors.Is(err, spreadsheet.ErrTemplateNotFound):
			h.logger.Warn("GET /check-template - Template not found: %s", h.inspector.TemplatePath())
			handlers.RespondNotFound(w, msgTemplateNotFound+h.inspector.TemplatePath())

		default:
			h.logger.Error("GET /check-template - Failed to load template: %v", err)
			handlers.RespondInternalErrorMessage(w, msgTemplateError+err.Error())
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &CheckTemplateResponse{
		Success:   true,
		Message:   msgTemplateLoaded,
		SheetName: info.SheetName,
		KeyCells:  info.KeyCells,
	})
}
