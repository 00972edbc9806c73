package download_document

import (
	"context"

	"github.com/m04kA/SMC-BookingDocs/internal/service/documents/models"
)

type DocumentService interface {
	GetFile(ctx context.Context, id string) (*models.FileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
