package generate_document

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingDocs/internal/api/handlers"
	generateDocument "github.com/m04kA/SMC-BookingDocs/internal/usecase/generate_document"
)

const (
	msgGenerated          = "Visa booking document generated successfully!"
	msgInvalidRequestBody = "Invalid request body"
	msgGenerationFailed   = "Error generating document: "
)

type Handler struct {
	useCase GenerateDocumentUseCase
	logger  Logger
}

func NewHandler(useCase GenerateDocumentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /generate-document
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req generateDocument.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /generate-document - Invalid request body: %v", err)
		var typeErr *handlers.FieldTypeError
		if errors.As(err, &typeErr) {
			handlers.RespondBadRequest(w, typeErr.Error())
			return
		}
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		var vErr *generateDocument.ValidationError
		switch {
		case errors.As(err, &vErr):
			h.logger.Warn("POST /generate-document - Validation failed: field=%s, error=%v", vErr.Field, vErr.Err)
			handlers.RespondBadRequest(w, vErr.Error())

		default:
			h.logger.Error("POST /generate-document - Failed to generate document: company=%q, error=%v", req.Company, err)
			handlers.RespondInternalErrorMessage(w, msgGenerationFailed+err.Error())
		}
		return
	}

	h.logger.Info("POST /generate-document - Document generated successfully: id=%s, company=%q",
		result.ID, result.Company)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
