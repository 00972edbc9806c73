package domain

import "time"

// BookingRequest данные формы бронирования после валидации
type BookingRequest struct {
	GuestName     string
	Email         string
	Company       string
	ArrivalDate   time.Time
	DepartureDate time.Time
	Quantity      int    // >= 1
	RoomType      string // по умолчанию DefaultRoomType
	Remark        string
	Purpose       string
}

// Nights возвращает количество ночей (не меньше MinNights)
func (b *BookingRequest) Nights() int {
	return Nights(b.ArrivalDate, b.DepartureDate)
}

// TotalAmount возвращает итоговую сумму в CFA
func (b *BookingRequest) TotalAmount() int {
	return TotalAmount(b.Nights(), b.Quantity)
}

// Nights считает полные сутки между датами заезда и выезда.
// Выезд раньше заезда или в тот же день даёт одну ночь.
func Nights(arrival, departure time.Time) int {
	a := dateOnly(arrival)
	d := dateOnly(departure)

	nights := int(d.Sub(a).Hours() / 24)
	if nights < MinNights {
		return MinNights
	}
	return nights
}

// TotalAmount nights × RoomRate × quantity
func TotalAmount(nights, quantity int) int {
	return nights * RoomRate * quantity
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
