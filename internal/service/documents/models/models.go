package models

import (
	"github.com/m04kA/SMC-BookingDocs/internal/domain"
)

// Response модели

// DocumentResponse полная запись о документе
type DocumentResponse struct {
	ID            string `json:"id"`
	FileName      string `json:"filename"`
	Company       string `json:"company"`
	Email         string `json:"email"`
	GuestName     string `json:"guest_name"`
	ArrivalDate   string `json:"arrival_date"`   // "2024-05-17"
	DepartureDate string `json:"departure_date"` // "2024-05-20"
	Nights        int    `json:"nights"`
	TotalAmount   int    `json:"total_amount"`
	RoomType      string `json:"room_type"`
	Quantity      int    `json:"quantity"`
	Remark        string `json:"remark,omitempty"`
	GeneratedDate string `json:"generated_date"` // "2024-05-17 10:30:00"
	FilePath      string `json:"filepath"`
	Purpose       string `json:"purpose"`
	DownloadURL   string `json:"download_url"`
	PrintURL      string `json:"print_url"`
}

// DocumentSummary краткая запись для списка документов
type DocumentSummary struct {
	ID            string `json:"id"`
	FileName      string `json:"filename"`
	Company       string `json:"company"`
	Email         string `json:"email"`
	GuestName     string `json:"guest_name"`
	Dates         string `json:"dates"` // "2024-05-17 to 2024-05-20"
	Nights        int    `json:"nights"`
	TotalAmount   int    `json:"total_amount"`
	GeneratedDate string `json:"generated_date"`
	DownloadURL   string `json:"download_url"`
	PrintURL      string `json:"print_url"`
}

// DocumentListResponse список документов
type DocumentListResponse struct {
	Documents []DocumentSummary `json:"documents"`
	Count     int               `json:"count"`
}

// FileResponse файл документа для скачивания
type FileResponse struct {
	FileName string
	FilePath string
}

// CleanupResponse итог очистки
type CleanupResponse struct {
	Evicted   int `json:"evicted"`
	Orphans   int `json:"orphans"`
	Remaining int `json:"remaining_documents"`
}

// FromDomainDocument конвертирует доменный документ в полный ответ
func FromDomainDocument(d *domain.GeneratedDocument) *DocumentResponse {
	return &DocumentResponse{
		ID:            d.ID,
		FileName:      d.FileName,
		Company:       d.Company,
		Email:         d.Email,
		GuestName:     d.GuestName,
		ArrivalDate:   d.ArrivalDate.Format(domain.DateFormat),
		DepartureDate: d.DepartureDate.Format(domain.DateFormat),
		Nights:        d.Nights,
		TotalAmount:   d.TotalAmount,
		RoomType:      d.RoomType,
		Quantity:      d.Quantity,
		Remark:        d.Remark,
		GeneratedDate: d.GeneratedAt.Format(domain.TimestampFormat),
		FilePath:      d.FilePath,
		Purpose:       d.Purpose,
		DownloadURL:   d.DownloadURL(),
		PrintURL:      d.PrintURL(),
	}
}

// FromDomainSummary конвертирует доменный документ в краткую запись
func FromDomainSummary(d *domain.GeneratedDocument) *DocumentSummary {
	return &DocumentSummary{
		ID:            d.ID,
		FileName:      d.FileName,
		Company:       d.Company,
		Email:         d.Email,
		GuestName:     d.GuestName,
		Dates:         d.Dates(),
		Nights:        d.Nights,
		TotalAmount:   d.TotalAmount,
		GeneratedDate: d.GeneratedAt.Format(domain.TimestampFormat),
		DownloadURL:   d.DownloadURL(),
		PrintURL:      d.PrintURL(),
	}
}

// FromDomainDocumentList конвертирует список документов в ответ
func FromDomainDocumentList(docs []*domain.GeneratedDocument) *DocumentListResponse {
	summaries := make([]DocumentSummary, 0, len(docs))
	for _, d := range docs {
		summaries = append(summaries, *FromDomainSummary(d))
	}

	return &DocumentListResponse{
		Documents: summaries,
		Count:     len(summaries),
	}
}
