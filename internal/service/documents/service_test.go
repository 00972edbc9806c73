package documents

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingDocs/internal/domain"
	"github.com/m04kA/SMC-BookingDocs/internal/infra/storage/document"
)

// Mocks

type mockLogger struct{}

func (m *mockLogger) Info(format string, v ...interface{})  {}
func (m *mockLogger) Warn(format string, v ...interface{})  {}
func (m *mockLogger) Error(format string, v ...interface{}) {}

type mockTimeProvider struct {
	now time.Time
}

func (m *mockTimeProvider) Now() time.Time { return m.now }

type mockPrinter struct {
	paths []string
	err   error
}

func (m *mockPrinter) Print(_ context.Context, path string) error {
	m.paths = append(m.paths, path)
	return m.err
}

type mockReporter struct {
	printed []string
}

func (m *mockReporter) PrintRequest(doc *domain.GeneratedDocument) {
	m.printed = append(m.printed, doc.ID)
}

type mockMetrics struct {
	evicted   int
	remaining int
}

func (m *mockMetrics) ObserveEviction(evicted, remaining int) {
	m.evicted += evicted
	m.remaining = remaining
}

type sweepCall struct {
	dir    string
	cutoff time.Time
	keep   func(string) bool
}

// Helpers

var testNow = time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	dir      string
	registry *document.Registry
	printer  *mockPrinter
	reporter *mockReporter
	metrics  *mockMetrics
	sweeps   []sweepCall
	svc      *Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	clock := &mockTimeProvider{now: testNow}
	env := &testEnv{
		dir:      t.TempDir(),
		registry: document.NewRegistry(&mockLogger{}).WithTimeProvider(clock),
		printer:  &mockPrinter{},
		reporter: &mockReporter{},
		metrics:  &mockMetrics{},
	}
	sweep := func(dir string, cutoff time.Time, keep func(string) bool) (int, error) {
		env.sweeps = append(env.sweeps, sweepCall{dir: dir, cutoff: cutoff, keep: keep})
		return 0, nil
	}
	env.svc = NewService(env.registry, env.printer, env.reporter, env.metrics, sweep, env.dir, &mockLogger{}).
		WithTimeProvider(clock)
	return env
}

func (e *testEnv) record(t *testing.T, id string, generatedAt time.Time) *domain.GeneratedDocument {
	t.Helper()

	name := "Visa_Booking_" + id + "_Acme.xlsx"
	path := filepath.Join(e.dir, name)
	require.NoError(t, os.WriteFile(path, []byte("xlsx"), 0o644))

	doc := &domain.GeneratedDocument{
		ID:            id,
		FileName:      name,
		FilePath:      path,
		Company:       "Acme",
		Email:         "jane@acme.test",
		GuestName:     "Jane Doe",
		ArrivalDate:   time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC),
		DepartureDate: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		Nights:        3,
		TotalAmount:   294000,
		RoomType:      domain.DefaultRoomType,
		Quantity:      1,
		Purpose:       domain.PurposeVisaApplicationOnly,
		GeneratedAt:   generatedAt,
	}
	require.NoError(t, e.registry.Record(context.Background(), doc))
	return doc
}

// Tests

func TestService_List(t *testing.T) {
	env := newTestEnv(t)
	env.record(t, "202405170001", testNow)
	env.record(t, "202405170002", testNow)

	resp, err := env.svc.List(context.Background())
	require.NoError(t, err)

	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "202405170001", resp.Documents[0].ID)
	assert.Equal(t, "2024-05-17 to 2024-05-20", resp.Documents[0].Dates)
	assert.Equal(t, "/download/202405170002", resp.Documents[1].DownloadURL)
}

func TestService_List_Empty(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.svc.List(context.Background())
	require.NoError(t, err)

	assert.Zero(t, resp.Count)
	assert.NotNil(t, resp.Documents)
}

func TestService_GetByID(t *testing.T) {
	env := newTestEnv(t)
	env.record(t, "202405170001", testNow)

	resp, err := env.svc.GetByID(context.Background(), "202405170001")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", resp.GuestName)
	assert.Equal(t, "2024-05-17 12:00:00", resp.GeneratedDate)
	assert.Equal(t, "/print/202405170001", resp.PrintURL)

	_, err = env.svc.GetByID(context.Background(), "unknown")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestService_GetFile(t *testing.T) {
	env := newTestEnv(t)
	doc := env.record(t, "202405170001", testNow)

	resp, err := env.svc.GetFile(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.FilePath, resp.FilePath)
	assert.Equal(t, doc.FileName, resp.FileName)

	require.NoError(t, os.Remove(doc.FilePath))
	_, err = env.svc.GetFile(context.Background(), doc.ID)
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = env.svc.GetFile(context.Background(), "unknown")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestService_Print(t *testing.T) {
	env := newTestEnv(t)
	doc := env.record(t, "202405170001", testNow)

	resp, err := env.svc.Print(context.Background(), doc.ID)
	require.NoError(t, err)

	assert.Equal(t, doc.ID, resp.ID)
	assert.Equal(t, []string{doc.ID}, env.reporter.printed)
	assert.Equal(t, []string{doc.FilePath}, env.printer.paths)
}

func TestService_Print_PrinterFailureIgnored(t *testing.T) {
	env := newTestEnv(t)
	doc := env.record(t, "202405170001", testNow)
	env.printer.err = errors.New("no printers configured")

	resp, err := env.svc.Print(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, resp.ID)
}

func TestService_Print_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Print(context.Background(), "unknown")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
	assert.Empty(t, env.reporter.printed)
	assert.Empty(t, env.printer.paths)
}

func TestService_Cleanup(t *testing.T) {
	env := newTestEnv(t)
	old := env.record(t, "202405140001", testNow.Add(-49*time.Hour))
	fresh := env.record(t, "202405170001", testNow.Add(-time.Hour))

	resp, err := env.svc.Cleanup(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Evicted)
	assert.Equal(t, 1, resp.Remaining)
	assert.NoFileExists(t, old.FilePath)
	assert.FileExists(t, fresh.FilePath)

	_, err = env.svc.GetFile(context.Background(), old.ID)
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	assert.Equal(t, 1, env.metrics.evicted)
	assert.Equal(t, 1, env.metrics.remaining)

	require.Len(t, env.sweeps, 1)
	assert.Equal(t, env.dir, env.sweeps[0].dir)
	assert.Equal(t, testNow.Add(-48*time.Hour), env.sweeps[0].cutoff)
	assert.True(t, env.sweeps[0].keep(fresh.FilePath))
	assert.False(t, env.sweeps[0].keep(old.FilePath))
}

func TestService_Cleanup_SweepErrorIsNotFatal(t *testing.T) {
	env := newTestEnv(t)
	env.svc.sweep = func(string, time.Time, func(string) bool) (int, error) {
		return 0, errors.New("permission denied")
	}

	resp, err := env.svc.Cleanup(context.Background())
	require.NoError(t, err)
	assert.Zero(t, resp.Remaining)
}
