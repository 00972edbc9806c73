package spreadsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BookingDocs/internal/domain"
)

func TestSanitizeCompany(t *testing.T) {
	tests := []struct {
		name     string
		company  string
		expected string
	}{
		{name: "plain", company: "Acme", expected: "Acme"},
		{name: "spaces become underscores", company: "Acme Trading Co", expected: "Acme_Trading_Co"},
		{name: "punctuation stripped", company: "Acme, Inc. (GE)!", expected: "Acme_Inc_GE"},
		{name: "hyphen and underscore kept", company: "Alpha-Beta_Gamma", expected: "Alpha-Beta_Gamma"},
		{name: "non ascii stripped", company: "Société Générale", expected: "Socit_Gnrale"},
		{name: "surrounding spaces trimmed", company: "  Acme  ", expected: "Acme"},
		{name: "truncated to 30", company: "International Hospitality Consulting Group", expected: "International_Hospitality_Cons"},
		{name: "only forbidden characters", company: "@#$%", expected: ""},
		{name: "path separators stripped", company: "../etc/passwd", expected: "etcpasswd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeCompany(tt.company)
			assert.Equal(t, tt.expected, got)
			assert.LessOrEqual(t, len(got), domain.MaxCompanyNameLength)
		})
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t,
		"Visa_Booking_202405170007_Acme_Trading.xlsx",
		FileName("202405170007", "Acme Trading!"),
	)
}
