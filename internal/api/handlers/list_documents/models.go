package list_documents

import "github.com/m04kA/SMC-BookingDocs/internal/service/documents/models"

// ListDocumentsResponse HTTP response model
type ListDocumentsResponse struct {
	Success   bool                     `json:"success"`
	Count     int                      `json:"count"`
	Documents []models.DocumentSummary `json:"documents"`
}
