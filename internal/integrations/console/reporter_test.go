package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BookingDocs/internal/domain"
)

func sampleDoc() *domain.GeneratedDocument {
	return &domain.GeneratedDocument{
		ID:            "202405170001",
		FileName:      "Visa_Booking_202405170001_Acme.xlsx",
		FilePath:      "generated_documents/Visa_Booking_202405170001_Acme.xlsx",
		Company:       "Acme",
		Email:         "jane@acme.test",
		GuestName:     "Jane Doe",
		ArrivalDate:   time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC),
		DepartureDate: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		Nights:        3,
		TotalAmount:   588000,
		GeneratedAt:   time.Date(2024, 5, 17, 10, 30, 0, 0, time.UTC),
	}
}

func TestReporter_FormatAmount(t *testing.T) {
	r := NewReporter(&bytes.Buffer{})

	tests := []struct {
		amount   int
		expected string
	}{
		{amount: 0, expected: "0 CFA"},
		{amount: 98000, expected: "98,000 CFA"},
		{amount: 1234000, expected: "1,234,000 CFA"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.FormatAmount(tt.amount))
		})
	}
}

func TestReporter_Generated(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf).Generated(sampleDoc())

	out := buf.String()
	banner := strings.Repeat("=", 60)
	assert.Contains(t, out, banner+"\nNEW VISA BOOKING DOCUMENT GENERATED\n"+banner+"\n")
	assert.Contains(t, out, "Company: Acme\n")
	assert.Contains(t, out, "Email: jane@acme.test\n")
	assert.Contains(t, out, "Guest: Jane Doe\n")
	assert.Contains(t, out, "Dates: 2024-05-17 to 2024-05-20\n")
	assert.Contains(t, out, "Nights: 3\n")
	assert.Contains(t, out, "Total: 588,000 CFA\n")
	assert.Contains(t, out, "Document ID: 202405170001\n")
	assert.Contains(t, out, "Location: generated_documents/Visa_Booking_202405170001_Acme.xlsx\n")
}

func TestReporter_PrintRequest(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf).PrintRequest(sampleDoc())

	out := buf.String()
	assert.Contains(t, out, "DOCUMENT PRINT REQUEST\n")
	assert.Contains(t, out, "Generated: 2024-05-17 10:30:00\n")
	assert.Contains(t, out, "Path: generated_documents/Visa_Booking_202405170001_Acme.xlsx\n")
	assert.NotContains(t, out, "Location:")
}
