package documents

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/m04kA/SMC-BookingDocs/internal/domain"
	documentRepo "github.com/m04kA/SMC-BookingDocs/internal/infra/storage/document"
	"github.com/m04kA/SMC-BookingDocs/internal/service/documents/models"
)

// Service сервис для работы со сгенерированными документами
type Service struct {
	registry     DocumentRegistry
	printer      Printer
	reporter     Reporter
	metrics      Metrics
	sweep        OrphanSweeper
	generatedDir string
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса документов
func NewService(
	registry DocumentRegistry,
	printer Printer,
	reporter Reporter,
	metrics Metrics,
	sweep OrphanSweeper,
	generatedDir string,
	logger Logger,
) *Service {
	return &Service{
		registry:     registry,
		printer:      printer,
		reporter:     reporter,
		metrics:      metrics,
		sweep:        sweep,
		generatedDir: generatedDir,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// List возвращает все документы в порядке генерации
func (s *Service) List(ctx context.Context) (*models.DocumentListResponse, error) {
	docs, err := s.registry.List(ctx)
	if err != nil {
		s.logger.Error("List: registry error: %v", err)
		return nil, fmt.Errorf("%w: List - registry error: %v", ErrInternal, err)
	}

	return models.FromDomainDocumentList(docs), nil
}

// GetByID возвращает документ по номеру подтверждения
func (s *Service) GetByID(ctx context.Context, id string) (*models.DocumentResponse, error) {
	doc, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainDocument(doc), nil
}

// GetFile возвращает путь к файлу документа. Файл должен существовать.
func (s *Service) GetFile(ctx context.Context, id string) (*models.FileResponse, error) {
	doc, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(doc.FilePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("GetFile: file %s of document %s is missing", doc.FilePath, id)
			return nil, ErrFileNotFound
		}
		s.logger.Error("GetFile: stat %s: %v", doc.FilePath, err)
		return nil, fmt.Errorf("%w: GetFile - stat error: %v", ErrInternal, err)
	}

	return &models.FileResponse{FileName: doc.FileName, FilePath: doc.FilePath}, nil
}

// Print печатает сводку в консоль и пытается отправить файл на принтер.
// Ошибка принтера не влияет на результат.
func (s *Service) Print(ctx context.Context, id string) (*models.DocumentSummary, error) {
	doc, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.reporter.PrintRequest(doc)

	if err := s.printer.Print(ctx, doc.FilePath); err != nil {
		s.logger.Warn("Print: document %s was not sent to printer: %v", id, err)
	}

	return models.FromDomainSummary(doc), nil
}

// Cleanup удаляет документы старше срока хранения вместе с файлами,
// а также файлы в папке документов, которых нет в реестре
func (s *Service) Cleanup(ctx context.Context) (*models.CleanupResponse, error) {
	res, err := s.registry.EvictOlderThan(ctx, domain.RetentionPeriod)
	if err != nil {
		s.logger.Error("Cleanup: eviction failed: %v", err)
		return nil, fmt.Errorf("%w: Cleanup - eviction error: %v", ErrInternal, err)
	}

	orphans := 0
	if s.sweep != nil {
		cutoff := s.timeProvider.Now().Add(-domain.RetentionPeriod)
		orphans, err = s.sweep(s.generatedDir, cutoff, s.registry.Contains)
		if err != nil {
			s.logger.Warn("Cleanup: orphan sweep of %s failed: %v", s.generatedDir, err)
		}
	}

	s.metrics.ObserveEviction(res.Evicted+orphans, res.Remaining)
	s.logger.Info("Cleanup: evicted %d documents, removed %d orphan files, %d remaining",
		res.Evicted, orphans, res.Remaining)

	return &models.CleanupResponse{
		Evicted:   res.Evicted,
		Orphans:   orphans,
		Remaining: res.Remaining,
	}, nil
}

func (s *Service) get(ctx context.Context, id string) (*domain.GeneratedDocument, error) {
	doc, err := s.registry.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, documentRepo.ErrDocumentNotFound) {
			s.logger.Warn("document id=%s not found", id)
			return nil, ErrDocumentNotFound
		}
		s.logger.Error("registry error for document id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: registry error: %v", ErrInternal, err)
	}
	return doc, nil
}
