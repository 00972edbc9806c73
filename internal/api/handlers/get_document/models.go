package get_document

import "github.com/m04kA/SMC-BookingDocs/internal/service/documents/models"

// GetDocumentResponse HTTP response model
type GetDocumentResponse struct {
	Success  bool                     `json:"success"`
	Document *models.DocumentResponse `json:"document"`
}
