package document

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/m04kA/SMC-BookingDocs/internal/domain"
)

// EvictionResult итог очистки реестра
type EvictionResult struct {
	Evicted   int
	Remaining int
}

// Registry реестр сгенерированных документов в памяти процесса.
// Порядок записей совпадает с порядком генерации. ID не обязан быть уникальным:
// при сбое счётчика номер может повториться, тогда поиск по ID возвращает первую запись.
type Registry struct {
	mu     sync.RWMutex
	docs   []*domain.GeneratedDocument
	clock  TimeProvider
	logger Logger
}

// NewRegistry создает пустой реестр
func NewRegistry(logger Logger) *Registry {
	return &Registry{
		clock:  &RealTimeProvider{},
		logger: logger,
	}
}

// WithTimeProvider подменяет источник времени
func (r *Registry) WithTimeProvider(clock TimeProvider) *Registry {
	r.clock = clock
	return r
}

// Record добавляет документ в конец реестра
func (r *Registry) Record(ctx context.Context, doc *domain.GeneratedDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if doc == nil || doc.ID == "" {
		return ErrInvalidDocument
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range r.docs {
		if d.ID == doc.ID {
			r.logger.Warn("Registry: document id %s is already registered, keeping both records", doc.ID)
			break
		}
	}

	r.docs = append(r.docs, doc.Clone())
	return nil
}

// List возвращает копии всех документов в порядке генерации
func (r *Registry) List(ctx context.Context) ([]*domain.GeneratedDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := make([]*domain.GeneratedDocument, 0, len(r.docs))
	for _, doc := range r.docs {
		docs = append(docs, doc.Clone())
	}
	return docs, nil
}

// GetByID возвращает копию первого документа с таким ID
func (r *Registry) GetByID(ctx context.Context, id string) (*domain.GeneratedDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, doc := range r.docs {
		if doc.ID == id {
			return doc.Clone(), nil
		}
	}
	return nil, ErrDocumentNotFound
}

// Len количество документов в реестре
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.docs)
}

// Contains проверяет, есть ли в реестре документ с таким путём к файлу
func (r *Registry) Contains(filePath string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.containsLocked(filePath)
}

func (r *Registry) containsLocked(filePath string) bool {
	for _, doc := range r.docs {
		if doc.FilePath == filePath {
			return true
		}
	}
	return false
}

// EvictOlderThan удаляет записи, сгенерированные раньше now - threshold, вместе с файлами.
// Отсутствующий файл не считается ошибкой, остальные ошибки удаления логируются.
func (r *Registry) EvictOlderThan(ctx context.Context, threshold time.Duration) (EvictionResult, error) {
	if err := ctx.Err(); err != nil {
		return EvictionResult{}, err
	}

	cutoff := r.clock.Now().Add(-threshold)

	r.mu.Lock()
	var (
		kept    = make([]*domain.GeneratedDocument, 0, len(r.docs))
		evicted []*domain.GeneratedDocument
	)
	for _, doc := range r.docs {
		if doc.IsOlderThan(cutoff) {
			evicted = append(evicted, doc)
			continue
		}
		kept = append(kept, doc)
	}
	r.docs = kept
	remaining := len(kept)

	// Файл, на который ссылается оставшаяся запись, не удаляется
	var toDelete []*domain.GeneratedDocument
	for _, doc := range evicted {
		if r.containsLocked(doc.FilePath) {
			r.logger.Warn("Registry: evicted document %s shares file %s with a newer record, file kept", doc.ID, doc.FilePath)
			continue
		}
		toDelete = append(toDelete, doc)
	}
	r.mu.Unlock()

	for _, doc := range toDelete {
		if err := os.Remove(doc.FilePath); err != nil && !errors.Is(err, os.ErrNotExist) {
			r.logger.Warn("Registry: failed to delete file %s of document %s: %v", doc.FilePath, doc.ID, err)
			continue
		}
		r.logger.Info("Registry: evicted document %s (generated %s)", doc.ID, doc.GeneratedAt.Format(domain.TimestampFormat))
	}

	return EvictionResult{Evicted: len(evicted), Remaining: remaining}, nil
}
