package spreadsheet

import (
	"errors"
	"fmt"
)

// Stage этап заполнения шаблона
type Stage string

const (
	StageCopy  Stage = "copy"
	StageOpen  Stage = "open"
	StageWrite Stage = "write"
	StageSave  Stage = "save"
)

var (
	// ErrCopyTemplate не удалось скопировать шаблон во временный файл
	ErrCopyTemplate = errors.New("spreadsheet: failed to copy template")

	// ErrOpenTemplate не удалось открыть или разобрать книгу
	ErrOpenTemplate = errors.New("spreadsheet: failed to open template")

	// ErrWriteCells не удалось записать данные в ячейки
	ErrWriteCells = errors.New("spreadsheet: failed to write cells")

	// ErrSaveDocument не удалось сохранить заполненную книгу
	ErrSaveDocument = errors.New("spreadsheet: failed to save document")

	// ErrInvalidCell некорректный адрес ячейки или диапазона
	ErrInvalidCell = errors.New("spreadsheet: invalid cell reference")

	// ErrTemplateNotFound файл шаблона отсутствует
	ErrTemplateNotFound = errors.New("spreadsheet: template not found")

	// ErrNoActiveSheet в книге нет активного листа
	ErrNoActiveSheet = errors.New("spreadsheet: workbook has no active sheet")
)

// FillError ошибка заполнения шаблона с указанием этапа
type FillError struct {
	Stage Stage
	Err   error
}

func (e *FillError) Error() string {
	return fmt.Sprintf("%v: %v", stageError(e.Stage), e.Err)
}

// Unwrap позволяет проверять как сентинел этапа, так и исходную ошибку
func (e *FillError) Unwrap() []error {
	return []error{stageError(e.Stage), e.Err}
}

func newFillError(stage Stage, err error) *FillError {
	return &FillError{Stage: stage, Err: err}
}

func stageError(stage Stage) error {
	switch stage {
	case StageCopy:
		return ErrCopyTemplate
	case StageOpen:
		return ErrOpenTemplate
	case StageWrite:
		return ErrWriteCells
	default:
		return ErrSaveDocument
	}
}
