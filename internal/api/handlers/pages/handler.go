package pages

import (
	"embed"
	"net/http"

	"github.com/m04kA/SMC-BookingDocs/internal/api/handlers"
)

//go:embed static/*.html
var static embed.FS

const (
	indexPage = "static/index.html"
	adminPage = "static/admin.html"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Index GET /
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.serve(w, indexPage)
}

// Admin GET /admin
func (h *Handler) Admin(w http.ResponseWriter, r *http.Request) {
	h.serve(w, adminPage)
}

func (h *Handler) serve(w http.ResponseWriter, name string) {
	page, err := static.ReadFile(name)
	if err != nil {
		h.logger.Error("pages - Failed to read %s: %v", name, err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}
