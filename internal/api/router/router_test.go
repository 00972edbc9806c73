package router

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	checkTemplateHandler "github.com/m04kA/SMC-BookingDocs/internal/api/handlers/check_template"
	cleanupHandler "github.com/m04kA/SMC-BookingDocs/internal/api/handlers/cleanup_documents"
	downloadHandler "github.com/m04kA/SMC-BookingDocs/internal/api/handlers/download_document"
	generateHandler "github.com/m04kA/SMC-BookingDocs/internal/api/handlers/generate_document"
	getDocumentHandler "github.com/m04kA/SMC-BookingDocs/internal/api/handlers/get_document"
	listHandler "github.com/m04kA/SMC-BookingDocs/internal/api/handlers/list_documents"
	"github.com/m04kA/SMC-BookingDocs/internal/api/handlers/pages"
	printHandler "github.com/m04kA/SMC-BookingDocs/internal/api/handlers/print_document"
	"github.com/m04kA/SMC-BookingDocs/internal/domain"
	"github.com/m04kA/SMC-BookingDocs/internal/infra/spreadsheet"
	"github.com/m04kA/SMC-BookingDocs/internal/infra/storage/counter"
	"github.com/m04kA/SMC-BookingDocs/internal/infra/storage/document"
	"github.com/m04kA/SMC-BookingDocs/internal/infra/storage/files"
	"github.com/m04kA/SMC-BookingDocs/internal/integrations/console"
	"github.com/m04kA/SMC-BookingDocs/internal/integrations/printer"
	documentsService "github.com/m04kA/SMC-BookingDocs/internal/service/documents"
	generateDocumentUC "github.com/m04kA/SMC-BookingDocs/internal/usecase/generate_document"
	"github.com/m04kA/SMC-BookingDocs/pkg/metrics"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type testEnv struct {
	router       http.Handler
	metrics      *metrics.Metrics
	generatedDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	root := t.TempDir()
	templatePath := filepath.Join(root, "template.xlsx")
	generatedDir := filepath.Join(root, "generated_documents")
	scratchDir := filepath.Join(root, "scratch")
	require.NoError(t, files.EnsureDirs(generatedDir, scratchDir))
	require.NoError(t, spreadsheet.CreateDefault(templatePath))

	log := nopLogger{}
	m := metrics.New("test")

	filler := spreadsheet.NewFiller(templatePath, generatedDir, scratchDir, log)
	registry := document.NewRegistry(log)
	reporter := console.NewReporter(io.Discard)
	sweep := func(dir string, cutoff time.Time, keep func(string) bool) (int, error) {
		return files.SweepOlderThan(log, dir, cutoff, keep)
	}

	uc := generateDocumentUC.NewUseCase(
		counter.NewStore(filepath.Join(root, "daily_counters.json"), log),
		filler, registry, reporter, m, log,
	)
	svc := documentsService.NewService(registry, printer.NopPrinter{}, reporter, m, sweep, generatedDir, log)
	page := pages.NewHandler(log)

	r := New(Handlers{
		Index:            page.Index,
		Admin:            page.Admin,
		GenerateDocument: generateHandler.NewHandler(uc, log).Handle,
		ListDocuments:    listHandler.NewHandler(svc, log).Handle,
		GetDocument:      getDocumentHandler.NewHandler(svc, log).Handle,
		DownloadDocument: downloadHandler.NewHandler(svc, log).Handle,
		PrintDocument:    printHandler.NewHandler(svc, log).Handle,
		Cleanup:          cleanupHandler.NewHandler(svc, log).Handle,
		CheckTemplate:    checkTemplateHandler.NewHandler(filler, log).Handle,
	}, Options{
		Metrics:     m,
		MetricsPath: "/metrics",
		ServiceName: "test",
		Logger:      log,
	})

	return &testEnv{router: r, metrics: m, generatedDir: generatedDir}
}

func (e *testEnv) do(t *testing.T, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func generatedFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

const bookingForm = `{
	"guestName": "John Smith",
	"email": "john@acme.com",
	"company": "Acme Corp!",
	"arrivalDate": "2024-05-17",
	"departureDate": "2024-05-20",
	"quantity": 2
}`

func TestRouter_GenerateListDownload(t *testing.T) {
	env := newTestEnv(t)

	// генерация
	rec := env.do(t, http.MethodPost, "/generate-document", []byte(bookingForm))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var generated generateHandler.GenerateDocumentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &generated))
	assert.True(t, generated.Success)
	assert.Len(t, generated.Document.ID, 12)
	assert.Equal(t, 3, generated.Document.Nights)
	assert.Equal(t, 3*domain.RoomRate*2, generated.Document.TotalAmount)
	assert.Equal(t, "Visa_Booking_"+generated.Document.ID+"_Acme_Corp.xlsx", generated.Document.FileName)
	assert.Equal(t, "/download/"+generated.Document.ID, generated.Document.DownloadURL)
	assert.Equal(t, []string{generated.Document.FileName}, generatedFiles(t, env.generatedDir))

	// список
	rec = env.do(t, http.MethodGet, "/documents", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list listHandler.ListDocumentsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.True(t, list.Success)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, generated.Document.ID, list.Documents[0].ID)
	assert.Equal(t, "2024-05-17 to 2024-05-20", list.Documents[0].Dates)

	// запись
	rec = env.do(t, http.MethodGet, "/documents/"+generated.Document.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// скачивание
	rec = env.do(t, http.MethodGet, generated.Document.DownloadURL, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.XLSXContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), generated.Document.FileName)

	wb, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer wb.Close()
	guest, err := wb.GetCellValue(spreadsheet.DefaultSheetName, spreadsheet.CellGuestContact)
	require.NoError(t, err)
	assert.Equal(t, "John Smith", guest)

	// печать
	rec = env.do(t, http.MethodGet, "/print/"+generated.Document.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// метрики по шаблону маршрута
	assert.Equal(t, 1.0, testutil.ToFloat64(
		env.metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/download/{id}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		env.metrics.DocumentsGenerated.WithLabelValues(metrics.ResultSuccess)))
}

func TestRouter_SequentialNumbers(t *testing.T) {
	env := newTestEnv(t)

	var ids []string
	for i := 0; i < 2; i++ {
		rec := env.do(t, http.MethodPost, "/generate-document", []byte(bookingForm))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp generateHandler.GenerateDocumentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		ids = append(ids, resp.Document.ID)
	}

	today := time.Now().Format(domain.DayKeyFormat)
	// номер мог быть выдан до полуночи, а второй после
	if strings.HasPrefix(ids[0], today) && strings.HasPrefix(ids[1], today) {
		assert.Equal(t, today+"0001", ids[0])
		assert.Equal(t, today+"0002", ids[1])
	}
	assert.NotEqual(t, ids[0], ids[1])
	assert.Len(t, generatedFiles(t, env.generatedDir), 2)
}

func TestRouter_MissingFieldLeavesNoTrace(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/generate-document",
		[]byte(`{"guestName":"John Smith","company":"Acme","arrivalDate":"2024-05-17","departureDate":"2024-05-20"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Missing required field: email"}`, rec.Body.String())
	assert.Empty(t, generatedFiles(t, env.generatedDir))

	rec = env.do(t, http.MethodGet, "/documents", nil)
	assert.JSONEq(t, `{"success":true,"count":0,"documents":[]}`, rec.Body.String())
}

func TestRouter_NotFound(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name    string
		path    string
		message string
	}{
		{name: "document", path: "/documents/202405170001", message: "Document not found"},
		{name: "download", path: "/download/202405170001", message: "File not found"},
		{name: "print", path: "/print/202405170001", message: "Document not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodGet, tt.path, nil)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"success":false,"message":"`+tt.message+`"}`, rec.Body.String())
		})
	}
}

func TestRouter_CleanupAndTemplateCheck(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/cleanup", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"remaining_documents":0`)

	rec = env.do(t, http.MethodGet, "/check-template", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), spreadsheet.DefaultSheetName)
}

func TestRouter_PagesAndMetrics(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/", "/admin"} {
		rec := env.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	}

	env.do(t, http.MethodGet, "/documents", nil)
	rec := env.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestRouter_Preflight(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodOptions, "/generate-document", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, generatedFiles(t, env.generatedDir))
}
