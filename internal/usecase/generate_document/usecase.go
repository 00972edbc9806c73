package generate_document

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/m04kA/SMC-BookingDocs/internal/domain"
	"github.com/m04kA/SMC-BookingDocs/internal/infra/spreadsheet"
	"github.com/m04kA/SMC-BookingDocs/pkg/metrics"
)

// UseCase use case генерации документа подтверждения
type UseCase struct {
	counters     CounterStore
	filler       TemplateFiller
	registry     DocumentRegistry
	reporter     Reporter
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	counters CounterStore,
	filler TemplateFiller,
	registry DocumentRegistry,
	reporter Reporter,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		counters:     counters,
		filler:       filler,
		registry:     registry,
		reporter:     reporter,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute валидирует форму, выдаёт номер подтверждения, заполняет шаблон
// и регистрирует документ. При ошибке валидации ни файл, ни запись не создаются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateDocument: company=%q, guest=%q, dates=%s..%s",
		req.Company, req.GuestName, req.ArrivalDate, req.DepartureDate)

	// 1. Валидация
	booking, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GenerateDocument: validation failed: %v", err)
		uc.metrics.ObserveDocument(metrics.ResultValidationError)
		return nil, err
	}

	doc, err := uc.generate(ctx, booking)
	if err != nil {
		uc.metrics.ObserveDocument(metrics.ResultError)
		return nil, err
	}

	uc.reporter.Generated(doc)
	uc.metrics.ObserveDocument(metrics.ResultSuccess)
	uc.metrics.SetRegistrySize(uc.registry.Len())
	uc.logger.Info("GenerateDocument: document %s generated (%s)", doc.ID, doc.FileName)

	return &Response{
		ID:          doc.ID,
		FileName:    doc.FileName,
		Company:     doc.Company,
		Email:       doc.Email,
		GuestName:   doc.GuestName,
		Nights:      doc.Nights,
		TotalAmount: doc.TotalAmount,
		DownloadURL: doc.DownloadURL(),
		ViewURL:     doc.ViewURL(),
	}, nil
}

func (uc *UseCase) generate(ctx context.Context, booking *domain.BookingRequest) (*domain.GeneratedDocument, error) {
	// 2. Шаблон
	if _, err := uc.filler.EnsureTemplate(); err != nil {
		uc.logger.Error("GenerateDocument: failed to ensure template: %v", err)
		return nil, fmt.Errorf("%w: template: %v", ErrGeneration, err)
	}

	// 3. Номер подтверждения
	now := uc.timeProvider.Now()
	number, err := uc.counters.Next(ctx, now)
	if err != nil {
		uc.logger.Error("GenerateDocument: failed to allocate confirmation number: %v", err)
		return nil, fmt.Errorf("%w: confirmation number: %v", ErrGeneration, err)
	}

	// 4. Заполнение шаблона
	res, err := uc.filler.Fill(ctx, spreadsheet.FillInput{
		Booking:     booking,
		Number:      number,
		GeneratedAt: now,
	})
	if err != nil {
		var fillErr *spreadsheet.FillError
		if errors.As(err, &fillErr) {
			uc.logger.Error("GenerateDocument: fill failed at stage %s for %s: %v", fillErr.Stage, number, fillErr.Err)
		} else {
			uc.logger.Error("GenerateDocument: fill failed for %s: %v", number, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	doc := &domain.GeneratedDocument{
		ID:            number.String(),
		FileName:      res.FileName,
		FilePath:      res.FilePath,
		Company:       booking.Company,
		Email:         booking.Email,
		GuestName:     booking.GuestName,
		ArrivalDate:   booking.ArrivalDate,
		DepartureDate: booking.DepartureDate,
		Nights:        booking.Nights(),
		TotalAmount:   booking.TotalAmount(),
		RoomType:      booking.RoomType,
		Quantity:      booking.Quantity,
		Remark:        booking.Remark,
		Purpose:       booking.Purpose,
		GeneratedAt:   now,
	}

	// 5. Регистрация. Запись и файл живут вместе: без записи файл удаляется,
	// если на него не ссылается другая запись.
	if err := uc.registry.Record(ctx, doc); err != nil {
		uc.logger.Error("GenerateDocument: failed to record document %s: %v", doc.ID, err)
		if uc.registry.Contains(res.FilePath) {
			uc.logger.Warn("GenerateDocument: file %s belongs to another record, kept", res.FilePath)
		} else if rmErr := os.Remove(res.FilePath); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			uc.logger.Warn("GenerateDocument: failed to remove unrecorded file %s: %v", res.FilePath, rmErr)
		}
		return nil, fmt.Errorf("%w: record: %v", ErrGeneration, err)
	}

	return doc, nil
}
