package scheduler

import "context"

// BatchJob одна итерация периодической задачи. Возвращает количество обработанных элементов.
type BatchJob func(ctx context.Context) (int, error)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
