package spreadsheet

import (
	"github.com/m04kA/SMC-BookingDocs/internal/domain"
)

// Ячейки шаблона, в которые пишутся данные бронирования
const (
	CellGuestContact     = "J5"
	CellGuestReservation = "J19"
	CellGuestTable       = "D22"
	CellCompany          = "B7"
	CellArrival          = "H22"
	CellDeparture        = "K22"
	CellBookingDate      = "J8"
	CellConfirmation     = "J17"
	CellEmail            = "J9"
	CellRemark           = "J10"
	CellRoomType         = "L22"
	CellQuantity         = "Q22"
	CellNights           = "T22"
	CellRoomRate         = "V22"
)

// Служебный блок метаданных за пределами видимой области шаблона
const (
	CellMetaCompany   = "AA1"
	CellMetaEmail     = "AA2"
	CellMetaGenerated = "AA3"
	CellMetaDocument  = "AA4"
	CellMetaRemark    = "AA5"
)

// DataTargets ячейки, которые перезаписываются при заполнении.
// Объединения, содержащие любую из них, снимаются на время записи.
var DataTargets = []string{
	CellGuestContact, CellGuestReservation, CellGuestTable, CellCompany,
	CellArrival, CellDeparture, CellBookingDate, CellConfirmation,
	CellEmail, CellRemark,
	CellRoomType, CellQuantity, CellNights, CellRoomRate,
	"L23", "Q23", "T23", "V23",
}

// KeyCells ячейки, которые показывает проверка шаблона
var KeyCells = []string{"C3", "B5", "J6", "W5", "Z22"}

// FieldValues значения для записи в шаблон.
// Компания и email в видимую часть не пишутся, только в блок метаданных.
func FieldValues(in FillInput) []FieldValue {
	b := in.Booking

	return []FieldValue{
		{Target: CellGuestContact, Value: b.GuestName},
		{Target: CellGuestReservation, Value: b.GuestName},
		{Target: CellGuestTable, Value: b.GuestName},

		{Target: CellArrival, Value: b.ArrivalDate.Format(domain.DateFormat)},
		{Target: CellDeparture, Value: b.DepartureDate.Format(domain.DateFormat)},
		{Target: CellBookingDate, Value: in.GeneratedAt.Format(domain.DateFormat)},

		{Target: CellConfirmation, Value: in.Number.String()},

		{Target: CellRoomType, Value: b.RoomType},
		{Target: CellQuantity, Value: b.Quantity},
		{Target: CellNights, Value: b.Nights()},
		{Target: CellRoomRate, Value: domain.RoomRate},

		{Target: CellMetaCompany, Value: "Company: " + b.Company},
		{Target: CellMetaEmail, Value: "Email: " + b.Email},
		{Target: CellMetaGenerated, Value: "Generated: " + in.GeneratedAt.Format(domain.TimestampFormat)},
		{Target: CellMetaDocument, Value: "Document ID: " + in.Number.String()},
		{Target: CellMetaRemark, Value: "Remark: " + RemarkText(b)},
	}
}

// RemarkText примечание с пометкой о визовом назначении документа
func RemarkText(b *domain.BookingRequest) string {
	if b.Purpose == domain.PurposeVisaApplicationOnly {
		return domain.VisaDisclaimer + b.Remark
	}
	return b.Remark
}
