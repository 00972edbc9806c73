package spreadsheet

import (
	"strings"

	"github.com/m04kA/SMC-BookingDocs/internal/domain"
)

// SanitizeCompany оставляет в названии компании только [A-Za-z0-9 -_],
// заменяет пробелы на подчёркивания и обрезает до 30 символов
func SanitizeCompany(company string) string {
	var b strings.Builder
	for _, r := range company {
		if isFileNameRune(r) {
			b.WriteRune(r)
		}
	}

	s := strings.TrimSpace(b.String())
	s = strings.ReplaceAll(s, " ", "_")
	if len(s) > domain.MaxCompanyNameLength {
		s = s[:domain.MaxCompanyNameLength]
	}
	return s
}

// FileName имя файла документа: Visa_Booking_{номер}_{компания}.xlsx
func FileName(number domain.ConfirmationNumber, company string) string {
	return domain.FileNamePrefix + number.String() + "_" + SanitizeCompany(company) + domain.FileExtension
}

func isFileNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == ' ', r == '-', r == '_':
		return true
	}
	return false
}
