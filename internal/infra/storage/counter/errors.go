package counter

import "errors"

var (
	// ErrCancelled возвращается, если контекст отменён до выдачи номера
	ErrCancelled = errors.New("counter.store: request cancelled")
)
