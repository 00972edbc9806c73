package print_document

import (
	"context"

	"github.com/m04kA/SMC-BookingDocs/internal/service/documents/models"
)

type DocumentService interface {
	Print(ctx context.Context, id string) (*models.DocumentSummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
