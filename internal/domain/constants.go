package domain

import "time"

// Тариф и значения по умолчанию
const (
	RoomRate        = 98000 // CFA за номер в сутки
	Currency        = "CFA"
	DefaultRoomType = "Classic Queen"
	DefaultQuantity = 1
	MaxQuantity     = 100 // номеров в одном документе
	MinNights       = 1
)

// Назначение документа
const (
	PurposeVisaApplicationOnly = "VISA_APPLICATION_ONLY"
	VisaDisclaimer             = "FOR VISA APPLICATION PURPOSES ONLY - NOT AN ACTUAL BOOKING. "
)

// RetentionPeriod срок хранения сгенерированных документов
const RetentionPeriod = 48 * time.Hour

// Форматы даты и времени
const (
	DateFormat      = "2006-01-02"          // YYYY-MM-DD
	DayKeyFormat    = "20060102"            // ключ счётчика и префикс номера
	TimestampFormat = "2006-01-02 15:04:05" // generated_date
)

// Параметры имени файла
const (
	FileNamePrefix       = "Visa_Booking_"
	FileExtension        = ".xlsx"
	MaxCompanyNameLength = 30
	SequenceWidth        = 4
)

// XLSXContentType MIME тип xlsx файла
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
