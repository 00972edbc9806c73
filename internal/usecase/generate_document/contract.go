package generate_document

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingDocs/internal/domain"
	"github.com/m04kA/SMC-BookingDocs/internal/infra/spreadsheet"
)

// CounterStore интерфейс хранилища дневных счётчиков
type CounterStore interface {
	Next(ctx context.Context, today time.Time) (domain.ConfirmationNumber, error)
}

// TemplateFiller интерфейс заполнения шаблона
type TemplateFiller interface {
	EnsureTemplate() (bool, error)
	Fill(ctx context.Context, in spreadsheet.FillInput) (*spreadsheet.FillResult, error)
}

// DocumentRegistry интерфейс реестра документов
type DocumentRegistry interface {
	Record(ctx context.Context, doc *domain.GeneratedDocument) error
	Contains(filePath string) bool
	Len() int
}

// Reporter интерфейс вывода сводки в консоль
type Reporter interface {
	Generated(doc *domain.GeneratedDocument)
}

// Metrics интерфейс учёта результатов генерации
type Metrics interface {
	ObserveDocument(result string)
	SetRegistrySize(size int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
