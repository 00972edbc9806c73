package printer

import "errors"

var (
	// ErrUnsupportedOS возвращается, когда для текущей ОС нет команды печати
	ErrUnsupportedOS = errors.New("printer: unsupported operating system")

	// ErrFileNotFound возвращается, когда файл для печати отсутствует
	ErrFileNotFound = errors.New("printer: file not found")

	// ErrCommandFailed возвращается, когда команда печати завершилась с ошибкой
	ErrCommandFailed = errors.New("printer: print command failed")
)
