package pages

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockLogger struct{}

func (m *mockLogger) Info(format string, v ...interface{})  {}
func (m *mockLogger) Warn(format string, v ...interface{})  {}
func (m *mockLogger) Error(format string, v ...interface{}) {}

func TestPages(t *testing.T) {
	h := NewHandler(&mockLogger{})

	tests := []struct {
		name     string
		handle   http.HandlerFunc
		contains string
	}{
		{"index", h.Index, `id="booking-form"`},
		{"admin", h.Admin, "Generated documents"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handle(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}
