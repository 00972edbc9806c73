package document

import "errors"

var (
	// ErrDocumentNotFound возвращается, когда документ не найден в реестре
	ErrDocumentNotFound = errors.New("document.registry: document not found")

	// ErrInvalidDocument возвращается при попытке записать документ без ID
	ErrInvalidDocument = errors.New("document.registry: invalid document")
)
