package domain

import (
	"fmt"
	"time"
)

// ConfirmationNumber номер подтверждения: YYYYMMDD + порядковый номер за день (4 цифры)
type ConfirmationNumber string

// NewConfirmationNumber формирует номер подтверждения для дня и порядкового номера
func NewConfirmationNumber(day time.Time, sequence int) ConfirmationNumber {
	return ConfirmationNumber(fmt.Sprintf("%s%0*d", DayKey(day), SequenceWidth, sequence))
}

// DayKey ключ дня в файле счётчиков
func DayKey(day time.Time) string {
	return day.Format(DayKeyFormat)
}

func (n ConfirmationNumber) String() string {
	return string(n)
}
