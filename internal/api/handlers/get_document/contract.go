package get_document

import (
	"context"

	"github.com/m04kA/SMC-BookingDocs/internal/service/documents/models"
)

type DocumentService interface {
	GetByID(ctx context.Context, id string) (*models.DocumentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
