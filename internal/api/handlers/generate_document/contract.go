package generate_document

import (
	"context"

	generateDocument "github.com/m04kA/SMC-BookingDocs/internal/usecase/generate_document"
)

type GenerateDocumentUseCase interface {
	Execute(ctx context.Context, req *generateDocument.Request) (*generateDocument.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
