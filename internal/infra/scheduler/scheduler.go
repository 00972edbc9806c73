package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
)

const cleanupJobName = "documents-cleanup"

// ErrInvalidInterval возвращается при неположительном интервале задачи
var ErrInvalidInterval = errors.New("scheduler: interval must be positive")

// Manager периодические задачи сервиса на gocron
type Manager struct {
	scheduler gocron.Scheduler
	logger    Logger

	started   bool
	startedMu sync.Mutex
}

// NewManager создает планировщик
func NewManager(logger Logger) (*Manager, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	return &Manager{scheduler: s, logger: logger}, nil
}

// RegisterCleanup регистрирует очистку документов с интервалом interval.
// Первый запуск выполняется сразу после старта планировщика.
func (m *Manager) RegisterCleanup(job BatchJob, interval, timeout time.Duration) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}
	if timeout <= 0 {
		timeout = interval
	}

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			m.runCleanup(ctx, job)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName(cleanupJobName),
	)
	if err != nil {
		return fmt.Errorf("register %s: %w", cleanupJobName, err)
	}

	m.logger.Info("Scheduler: registered %s job, interval=%s", cleanupJobName, interval)
	return nil
}

func (m *Manager) runCleanup(ctx context.Context, job BatchJob) {
	start := time.Now()

	removed, err := job(ctx)
	if err != nil {
		m.logger.Error("Scheduler: %s failed after %s: %v", cleanupJobName, time.Since(start), err)
		return
	}

	if removed > 0 {
		m.logger.Info("Scheduler: %s removed %d files in %s", cleanupJobName, removed, time.Since(start))
	}
}

// Start запускает планировщик
func (m *Manager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Info("Scheduler: started with %d jobs", len(m.scheduler.Jobs()))
}

// Stop останавливает планировщик и дожидается выполняющихся задач
func (m *Manager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	err := m.scheduler.Shutdown()
	m.started = false
	if err != nil {
		m.logger.Error("Scheduler: shutdown with error: %v", err)
		return err
	}

	m.logger.Info("Scheduler: stopped")
	return nil
}

// Jobs зарегистрированные задачи
func (m *Manager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
