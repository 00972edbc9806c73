package printer

import "context"

// Printer отправляет файл на печать
type Printer interface {
	Print(ctx context.Context, path string) error
}

// Runner выполняет команду ОС и возвращает её вывод
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
