package print_document

import "github.com/m04kA/SMC-BookingDocs/internal/service/documents/models"

// PrintDocumentResponse HTTP response model
type PrintDocumentResponse struct {
	Success  bool          `json:"success"`
	Message  string        `json:"message"`
	Document PrintDocument `json:"document"`
}

// PrintDocument сводка по напечатанному документу
type PrintDocument struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Email       string `json:"email"`
	GuestName   string `json:"guest_name"`
	Dates       string `json:"dates"`
	Nights      int    `json:"nights"`
	TotalAmount int    `json:"total_amount"`
	FileName    string `json:"filename"`
}

// FromSummary конвертирует сводку сервиса в HTTP response
func FromSummary(s *models.DocumentSummary) *PrintDocumentResponse {
	return &PrintDocumentResponse{
		Success: true,
		Message: msgPrinted,
		Document: PrintDocument{
			ID:          s.ID,
			Company:     s.Company,
			Email:       s.Email,
			GuestName:   s.GuestName,
			Dates:       s.Dates,
			Nights:      s.Nights,
			TotalAmount: s.TotalAmount,
			FileName:    s.FileName,
		},
	}
}
