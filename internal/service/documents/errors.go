package documents

import "errors"

var (
	// ErrDocumentNotFound возвращается, когда документа нет в реестре
	ErrDocumentNotFound = errors.New("document not found")

	// ErrFileNotFound возвращается, когда запись есть, но файла на диске нет
	ErrFileNotFound = errors.New("file not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
