package documents

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingDocs/internal/domain"
	"github.com/m04kA/SMC-BookingDocs/internal/infra/storage/document"
)

// DocumentRegistry интерфейс реестра документов
type DocumentRegistry interface {
	List(ctx context.Context) ([]*domain.GeneratedDocument, error)
	GetByID(ctx context.Context, id string) (*domain.GeneratedDocument, error)
	EvictOlderThan(ctx context.Context, threshold time.Duration) (document.EvictionResult, error)
	Contains(filePath string) bool
}

// Printer интерфейс отправки файла на печать
type Printer interface {
	Print(ctx context.Context, path string) error
}

// Reporter интерфейс вывода сводки в консоль
type Reporter interface {
	PrintRequest(doc *domain.GeneratedDocument)
}

// Metrics интерфейс учёта очистки
type Metrics interface {
	ObserveEviction(evicted, remaining int)
}

// OrphanSweeper удаляет файлы, о которых реестр не знает
type OrphanSweeper func(dir string, cutoff time.Time, keep func(path string) bool) (int, error)

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
