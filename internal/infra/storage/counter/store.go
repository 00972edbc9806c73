package counter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/m04kA/SMC-BookingDocs/internal/domain"
)

// Counters счётчики документов по дням: "YYYYMMDD" -> количество
type Counters map[string]int

// Store хранилище ежедневных счётчиков в JSON файле.
// Все операции чтение-изменение-запись сериализуются мьютексом, поэтому
// в пределах процесса два запроса не получат один и тот же номер.
type Store struct {
	mu     sync.Mutex
	path   string
	logger Logger
}

// NewStore создает хранилище счётчиков в файле path
func NewStore(path string, logger Logger) *Store {
	return &Store{
		path:   path,
		logger: logger,
	}
}

// Next выдает следующий номер подтверждения на день today.
// Ошибки чтения и записи файла не фатальны: при ошибке чтения счёт начинается
// с пустого набора, при ошибке записи номер всё равно возвращается.
func (s *Store) Next(ctx context.Context, today time.Time) (domain.ConfirmationNumber, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCancelled, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	counters := s.load()

	key := domain.DayKey(today)
	counters[key]++
	sequence := counters[key]

	if err := s.save(counters); err != nil {
		s.logger.Error("CounterStore: failed to persist counters to %s: %v", s.path, err)
	}

	number := domain.NewConfirmationNumber(today, sequence)
	s.logger.Info("CounterStore: issued confirmation number %s (day=%s, sequence=%d)", number, key, sequence)
	return number, nil
}

// Snapshot возвращает текущие счётчики из файла
func (s *Store) Snapshot() Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// load читает счётчики. Отсутствующий или повреждённый файл даёт пустой набор.
func (s *Store) load() Counters {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("CounterStore: failed to read %s, starting from empty counters: %v", s.path, err)
		}
		return Counters{}
	}

	counters, err := decode(data)
	if err != nil {
		s.logger.Warn("CounterStore: failed to decode %s, starting from empty counters: %v", s.path, err)
		return Counters{}
	}
	return counters
}

func (s *Store) save(counters Counters) error {
	data, err := json.Marshal(counters)
	if err != nil {
		return fmt.Errorf("marshal counters: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create counters dir: %w", err)
		}
	}

	return os.WriteFile(s.path, data, 0o644)
}

// decode разбирает файл счётчиков. Значения-строки ("3") приводятся к числам.
func decode(data []byte) (Counters, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	counters := make(Counters, len(raw))
	for day, value := range raw {
		var n int
		if err := json.Unmarshal(value, &n); err == nil {
			counters[day] = n
			continue
		}

		var str string
		if err := json.Unmarshal(value, &str); err != nil {
			return nil, fmt.Errorf("counter for %s: unsupported value %s", day, string(value))
		}
		n, err := strconv.Atoi(str)
		if err != nil {
			return nil, fmt.Errorf("counter for %s: %w", day, err)
		}
		counters[day] = n
	}

	return counters, nil
}
