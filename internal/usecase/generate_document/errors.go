package generate_document

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BookingDocs/internal/domain"
)

var (
	// ErrMissingField возвращается, когда обязательное поле формы не заполнено
	ErrMissingField = errors.New("generate_document: missing required field")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("generate_document: invalid date format")

	// ErrInvalidQuantity возвращается, когда количество номеров вне 1..domain.MaxQuantity
	ErrInvalidQuantity = errors.New("generate_document: invalid quantity")

	// ErrGeneration возвращается при ошибке генерации документа
	ErrGeneration = errors.New("generate_document: generation failed")
)

// ValidationError ошибка валидации конкретного поля формы
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	switch e.Err {
	case ErrMissingField:
		return fmt.Sprintf("Missing required field: %s", e.Field)
	case ErrInvalidDate:
		return fmt.Sprintf("Invalid date format for field: %s (expected YYYY-MM-DD)", e.Field)
	case ErrInvalidQuantity:
		return fmt.Sprintf("Invalid value for field: %s (must be an integer from 1 to %d)", e.Field, domain.MaxQuantity)
	default:
		return fmt.Sprintf("Invalid field %s: %v", e.Field, e.Err)
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
