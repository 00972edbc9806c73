package generate_document

import (
	generateDocument "github.com/m04kA/SMC-BookingDocs/internal/usecase/generate_document"
)

// GenerateDocumentResponse HTTP response model
type GenerateDocumentResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Document DocumentResponse `json:"document"`
}

// DocumentResponse сводка по созданному документу
type DocumentResponse struct {
	ID          string `json:"id"`
	FileName    string `json:"filename"`
	Company     string `json:"company"`
	Email       string `json:"email"`
	GuestName   string `json:"guest_name"`
	Nights      int    `json:"nights"`
	TotalAmount int    `json:"total_amount"`
	DownloadURL string `json:"download_url"`
	ViewURL     string `json:"view_url"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateDocument.Response) *GenerateDocumentResponse {
	return &GenerateDocumentResponse{
		Success: true,
		Message: msgGenerated,
		Document: DocumentResponse{
			ID:          resp.ID,
			FileName:    resp.FileName,
			Company:     resp.Company,
			Email:       resp.Email,
			GuestName:   resp.GuestName,
			Nights:      resp.Nights,
			TotalAmount: resp.TotalAmount,
			DownloadURL: resp.DownloadURL,
			ViewURL:     resp.ViewURL,
		},
	}
}
