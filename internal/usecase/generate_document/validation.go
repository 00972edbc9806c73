package generate_document

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-BookingDocs/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// В ошибках используем имена полей из JSON
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest проверяет форму и приводит её к доменной модели.
// Возвращает первую ошибку в порядке полей формы.
func validateRequest(req *Request) (*domain.BookingRequest, error) {
	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			return nil, err
		}

		fe := fieldErrs[0]
		if fe.Tag() == "min" || fe.Tag() == "max" {
			return nil, &ValidationError{Field: fe.Field(), Err: ErrInvalidQuantity}
		}
		return nil, &ValidationError{Field: fe.Field(), Err: ErrMissingField}
	}

	arrival, err := parseDate("arrivalDate", req.ArrivalDate)
	if err != nil {
		return nil, err
	}
	departure, err := parseDate("departureDate", req.DepartureDate)
	if err != nil {
		return nil, err
	}

	booking := &domain.BookingRequest{
		GuestName:     req.GuestName,
		Email:         req.Email,
		Company:       req.Company,
		ArrivalDate:   arrival,
		DepartureDate: departure,
		Quantity:      domain.DefaultQuantity,
		RoomType:      domain.DefaultRoomType,
		Remark:        req.Remark,
		Purpose:       domain.PurposeVisaApplicationOnly,
	}
	if req.Quantity != nil {
		booking.Quantity = *req.Quantity
	}
	if req.RoomType != "" {
		booking.RoomType = req.RoomType
	}
	if req.Purpose != "" {
		booking.Purpose = req.Purpose
	}

	return booking, nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(domain.DateFormat, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, &ValidationError{Field: field, Err: ErrInvalidDate}
	}
	return t, nil
}
