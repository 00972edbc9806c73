package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	checkTemplateHandler "github.com/m04kA/SMC-BookingDocs/internal/api/handlers/check_template"
	cleanupDocumentsHandler "github.com/m04kA/SMC-BookingDocs/internal/api/handlers/cleanup_documents"
	downloadDocumentHandler "github.com/m04kA/SMC-BookingDocs/internal/api/handlers/download_document"
	generateDocumentHandler "github.com/m04kA/SMC-BookingDocs/internal/api/handlers/generate_document"
	getDocumentHandler "github.com/m04kA/SMC-BookingDocs/internal/api/handlers/get_document"
	listDocumentsHandler "github.com/m04kA/SMC-BookingDocs/internal/api/handlers/list_documents"
	"github.com/m04kA/SMC-BookingDocs/internal/api/handlers/pages"
	printDocumentHandler "github.com/m04kA/SMC-BookingDocs/internal/api/handlers/print_document"
	"github.com/m04kA/SMC-BookingDocs/internal/api/router"
	"github.com/m04kA/SMC-BookingDocs/internal/config"
	"github.com/m04kA/SMC-BookingDocs/internal/infra/scheduler"
	"github.com/m04kA/SMC-BookingDocs/internal/infra/spreadsheet"
	"github.com/m04kA/SMC-BookingDocs/internal/infra/storage/counter"
	documentRepo "github.com/m04kA/SMC-BookingDocs/internal/infra/storage/document"
	"github.com/m04kA/SMC-BookingDocs/internal/infra/storage/files"
	"github.com/m04kA/SMC-BookingDocs/internal/integrations/console"
	"github.com/m04kA/SMC-BookingDocs/internal/integrations/printer"
	documentsService "github.com/m04kA/SMC-BookingDocs/internal/service/documents"
	generateDocumentUC "github.com/m04kA/SMC-BookingDocs/internal/usecase/generate_document"
	"github.com/m04kA/SMC-BookingDocs/pkg/logger"
	"github.com/m04kA/SMC-BookingDocs/pkg/metrics"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  `Start the HTTP server. This is also what the root command does when run without a subcommand.`,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()
	if logLevel != "" {
		log.SetLevel(logLevel)
	}

	log.Info("Starting SMC-BookingDocs...")
	log.Info("Configuration loaded from %s (production=%t)", configPath, cfg.Server.Production)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Готовим папки
	scratchDir := cfg.Storage.ScratchDirOrDefault()
	if err := files.EnsureDirs(cfg.Storage.GeneratedDir, cfg.Storage.UploadDir, scratchDir); err != nil {
		return err
	}
	if cfg.Server.Production {
		removed := files.WipeDirs(log, cfg.Storage.GeneratedDir, cfg.Storage.UploadDir)
		log.Info("Production start: removed %d files from %s and %s",
			removed, cfg.Storage.GeneratedDir, cfg.Storage.UploadDir)
	}

	// Шаблон
	filler := spreadsheet.NewFiller(cfg.Storage.TemplatePath, cfg.Storage.GeneratedDir, scratchDir, log)
	if _, err := filler.EnsureTemplate(); err != nil {
		return fmt.Errorf("failed to prepare template %s: %w", cfg.Storage.TemplatePath, err)
	}

	// Инициализируем хранилища и интеграции
	counterStore := counter.NewStore(cfg.Storage.CounterFile, log)
	registry := documentRepo.NewRegistry(log)
	reporter := console.NewReporter(os.Stdout)

	var docPrinter documentsService.Printer = printer.NopPrinter{}
	if cfg.Printer.Enabled {
		docPrinter = printer.NewSystemPrinter(time.Duration(cfg.Printer.Timeout)*time.Second, log)
	}
	log.Info("Printer initialized (enabled=%t, timeout=%ds)", cfg.Printer.Enabled, cfg.Printer.Timeout)

	sweep := func(dir string, cutoff time.Time, keep func(path string) bool) (int, error) {
		return files.SweepOlderThan(log, dir, cutoff, keep)
	}

	// Инициализируем сервисы и use cases
	documentsSvc := documentsService.NewService(
		registry,
		docPrinter,
		reporter,
		metricsCollector,
		sweep,
		cfg.Storage.GeneratedDir,
		log,
	)

	generateDocumentUseCase := generateDocumentUC.NewUseCase(
		counterStore,
		filler,
		registry,
		reporter,
		metricsCollector,
		log,
	)

	// Периодическая очистка
	var cron *scheduler.Manager
	if cfg.Documents.CleanupEnabled {
		cron, err = scheduler.NewManager(log)
		if err != nil {
			return err
		}

		interval := cfg.Documents.CleanupInterval()
		cleanup := func(ctx context.Context) (int, error) {
			res, err := documentsSvc.Cleanup(ctx)
			if err != nil {
				return 0, err
			}
			return res.Evicted + res.Orphans, nil
		}
		if err := cron.RegisterCleanup(cleanup, interval, interval); err != nil {
			return err
		}
		cron.Start()
	}

	// Инициализируем handlers
	page := pages.NewHandler(log)
	generateDocument := generateDocumentHandler.NewHandler(generateDocumentUseCase, log)
	listDocuments := listDocumentsHandler.NewHandler(documentsSvc, log)
	getDocument := getDocumentHandler.NewHandler(documentsSvc, log)
	downloadDocument := downloadDocumentHandler.NewHandler(documentsSvc, log)
	printDocument := printDocumentHandler.NewHandler(documentsSvc, log)
	cleanupDocuments := cleanupDocumentsHandler.NewHandler(documentsSvc, log)
	checkTemplate := checkTemplateHandler.NewHandler(filler, log)

	// Настраиваем роутер
	r := router.New(router.Handlers{
		Index:            page.Index,
		Admin:            page.Admin,
		GenerateDocument: generateDocument.Handle,
		ListDocuments:    listDocuments.Handle,
		GetDocument:      getDocument.Handle,
		DownloadDocument: downloadDocument.Handle,
		PrintDocument:    printDocument.Handle,
		Cleanup:          cleanupDocuments.Handle,
		CheckTemplate:    checkTemplate.Handle,
	}, router.Options{
		Metrics:     metricsCollector,
		MetricsPath: cfg.Metrics.Path,
		ServiceName: cfg.Metrics.ServiceName,
		Logger:      log,
	})

	// Создаем HTTP сервер
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error("Server failed to start: %v", err)
		stopScheduler(cron)
		return err
	case <-quit:
	}

	log.Info("Shutting down server...")
	stopScheduler(cron)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}

func stopScheduler(cron *scheduler.Manager) {
	if cron == nil {
		return
	}
	_ = cron.Stop()
}
