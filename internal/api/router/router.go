// Package router собирает HTTP маршруты сервиса.
package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingDocs/internal/api/middleware"
	"github.com/m04kA/SMC-BookingDocs/pkg/metrics"
)

// Handlers обработчики маршрутов
type Handlers struct {
	Index            http.HandlerFunc
	Admin            http.HandlerFunc
	GenerateDocument http.HandlerFunc
	ListDocuments    http.HandlerFunc
	GetDocument      http.HandlerFunc
	DownloadDocument http.HandlerFunc
	PrintDocument    http.HandlerFunc
	Cleanup          http.HandlerFunc
	CheckTemplate    http.HandlerFunc
}

// Options параметры роутера. Metrics == nil отключает метрики.
type Options struct {
	Metrics     *metrics.Metrics
	MetricsPath string
	ServiceName string
	Logger      middleware.Logger
}

// New создает роутер со всеми маршрутами сервиса
func New(h Handlers, opts Options) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.Recover(opts.Logger))
	r.Use(middleware.CORS())
	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics, opts.ServiceName))
		r.Handle(opts.MetricsPath, opts.Metrics.Handler()).Methods(http.MethodGet)
	}

	// Страницы
	r.HandleFunc("/", h.Index).Methods(http.MethodGet)
	r.HandleFunc("/admin", h.Admin).Methods(http.MethodGet)

	// Документы
	r.HandleFunc("/generate-document", h.GenerateDocument).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/documents", h.ListDocuments).Methods(http.MethodGet)
	r.HandleFunc("/documents/{id}", h.GetDocument).Methods(http.MethodGet)
	r.HandleFunc("/download/{id}", h.DownloadDocument).Methods(http.MethodGet)
	r.HandleFunc("/print/{id}", h.PrintDocument).Methods(http.MethodGet)

	// Обслуживание
	r.HandleFunc("/cleanup", h.Cleanup).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/check-template", h.CheckTemplate).Methods(http.MethodGet)

	return r
}
