package middleware

import (
	"fmt"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// recoveryLogger пишет панику и стек в логгер сервиса
type recoveryLogger struct {
	log Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error("Panic recovered: %s", fmt.Sprint(v...))
}

// Recover перехватывает панику в обработчике, логирует её со стеком и отвечает 500
func Recover(log Logger) mux.MiddlewareFunc {
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{log: log}),
		handlers.PrintRecoveryStack(true),
	)
}
