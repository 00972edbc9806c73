package list_documents

import (
	"context"

	"github.com/m04kA/SMC-BookingDocs/internal/service/documents/models"
)

type DocumentService interface {
	List(ctx context.Context) (*models.DocumentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
