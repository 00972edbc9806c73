package cleanup_documents

import (
	"context"

	"github.com/m04kA/SMC-BookingDocs/internal/service/documents/models"
)

type DocumentService interface {
	Cleanup(ctx context.Context) (*models.CleanupResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
