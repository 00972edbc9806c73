package domain

import (
	"fmt"
	"time"
)

// GeneratedDocument сгенерированный документ подтверждения бронирования
type GeneratedDocument struct {
	ID            string // совпадает с номером подтверждения
	FileName      string
	FilePath      string
	Company       string
	Email         string
	GuestName     string
	ArrivalDate   time.Time
	DepartureDate time.Time
	Nights        int
	TotalAmount   int
	RoomType      string
	Quantity      int
	Remark        string
	Purpose       string
	GeneratedAt   time.Time
}

// DownloadURL ссылка на скачивание файла
func (d *GeneratedDocument) DownloadURL() string {
	return "/download/" + d.ID
}

// PrintURL ссылка на печать
func (d *GeneratedDocument) PrintURL() string {
	return "/print/" + d.ID
}

// ViewURL ссылка на карточку документа
func (d *GeneratedDocument) ViewURL() string {
	return "/documents/" + d.ID
}

// Dates возвращает период проживания в виде "2024-05-17 to 2024-05-19"
func (d *GeneratedDocument) Dates() string {
	return fmt.Sprintf("%s to %s", d.ArrivalDate.Format(DateFormat), d.DepartureDate.Format(DateFormat))
}

// IsOlderThan true, если документ сгенерирован раньше cutoff
func (d *GeneratedDocument) IsOlderThan(cutoff time.Time) bool {
	return d.GeneratedAt.Before(cutoff)
}

// Clone возвращает копию документа
func (d *GeneratedDocument) Clone() *GeneratedDocument {
	c := *d
	return &c
}
