package printer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recordedCall struct {
	name string
	args []string
}

func recordingRunner(calls *[]recordedCall, err error) Runner {
	return func(_ context.Context, name string, args ...string) ([]byte, error) {
		*calls = append(*calls, recordedCall{name: name, args: args})
		if err != nil {
			return []byte("printer offline\n"), err
		}
		return nil, nil
	}
}

func tempFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Visa_Booking_202405170001_Acme.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("xlsx"), 0o644))
	return path
}

func TestCommandFor(t *testing.T) {
	tests := []struct {
		goos     string
		expected Command
	}{
		{goos: "windows", expected: Command{Name: "cmd", Args: []string{"/C", "start", "/min", "", "f.xlsx"}}},
		{goos: "darwin", expected: Command{Name: "lpr", Args: []string{"f.xlsx"}}},
		{goos: "linux", expected: Command{Name: "lp", Args: []string{"f.xlsx"}}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			cmd, err := CommandFor(tt.goos, "f.xlsx")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cmd)
		})
	}

	_, err := CommandFor("plan9", "f.xlsx")
	assert.ErrorIs(t, err, ErrUnsupportedOS)
}

func TestSystemPrinter_Print(t *testing.T) {
	path := tempFile(t)
	var calls []recordedCall
	p := NewSystemPrinter(time.Second, nopLogger{}).WithRunner("linux", recordingRunner(&calls, nil))

	require.NoError(t, p.Print(context.Background(), path))
	require.Len(t, calls, 1)
	assert.Equal(t, recordedCall{name: "lp", args: []string{path}}, calls[0])
}

func TestSystemPrinter_Print_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		var calls []recordedCall
		p := NewSystemPrinter(0, nopLogger{}).WithRunner("linux", recordingRunner(&calls, nil))

		err := p.Print(context.Background(), filepath.Join(t.TempDir(), "missing.xlsx"))
		assert.ErrorIs(t, err, ErrFileNotFound)
		assert.Empty(t, calls)
	})

	t.Run("unsupported os", func(t *testing.T) {
		var calls []recordedCall
		p := NewSystemPrinter(0, nopLogger{}).WithRunner("plan9", recordingRunner(&calls, nil))

		err := p.Print(context.Background(), tempFile(t))
		assert.ErrorIs(t, err, ErrUnsupportedOS)
		assert.Empty(t, calls)
	})

	t.Run("command failed", func(t *testing.T) {
		var calls []recordedCall
		p := NewSystemPrinter(0, nopLogger{}).WithRunner("darwin", recordingRunner(&calls, errors.New("exit status 1")))

		err := p.Print(context.Background(), tempFile(t))
		assert.ErrorIs(t, err, ErrCommandFailed)
		assert.Contains(t, err.Error(), "printer offline")
	})
}

func TestNopPrinter(t *testing.T) {
	var p Printer = NopPrinter{}
	assert.NoError(t, p.Print(context.Background(), "anything"))
}
