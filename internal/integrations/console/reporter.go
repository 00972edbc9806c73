package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/m04kA/SMC-BookingDocs/internal/domain"
)

const (
	titleGenerated = "NEW VISA BOOKING DOCUMENT GENERATED"
	titlePrint     = "DOCUMENT PRINT REQUEST"
	bannerWidth    = 60
)

// Reporter печатает сводки по документам в консоль оператора
type Reporter struct {
	mu      sync.Mutex
	w       io.Writer
	printer *message.Printer
}

// NewReporter создает reporter, пишущий в w
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{
		w:       w,
		printer: message.NewPrinter(language.English),
	}
}

// Generated печатает сводку о новом документе
func (r *Reporter) Generated(doc *domain.GeneratedDocument) {
	r.write(titleGenerated, doc, []string{
		"File: " + doc.FileName,
		"Location: " + doc.FilePath,
	})
}

// PrintRequest печатает документ по запросу печати
func (r *Reporter) PrintRequest(doc *domain.GeneratedDocument) {
	r.write(titlePrint, doc, []string{
		"Generated: " + doc.GeneratedAt.Format(domain.TimestampFormat),
		"File: " + doc.FileName,
		"Path: " + doc.FilePath,
	})
}

// FormatAmount форматирует сумму с разделителями тысяч: "1,234,000 CFA"
func (r *Reporter) FormatAmount(amount int) string {
	return r.printer.Sprintf("%d", amount) + " " + domain.Currency
}

func (r *Reporter) write(title string, doc *domain.GeneratedDocument, tail []string) {
	banner := strings.Repeat("=", bannerWidth)

	var b strings.Builder
	b.WriteString("\n" + banner + "\n")
	b.WriteString(title + "\n")
	b.WriteString(banner + "\n")
	fmt.Fprintf(&b, "Company: %s\n", doc.Company)
	fmt.Fprintf(&b, "Email: %s\n", doc.Email)
	fmt.Fprintf(&b, "Guest: %s\n", doc.GuestName)
	fmt.Fprintf(&b, "Dates: %s\n", doc.Dates())
	fmt.Fprintf(&b, "Nights: %d\n", doc.Nights)
	fmt.Fprintf(&b, "Total: %s\n", r.FormatAmount(doc.TotalAmount))
	fmt.Fprintf(&b, "Document ID: %s\n", doc.ID)
	for _, line := range tail {
		b.WriteString(line + "\n")
	}
	b.WriteString(banner + "\n\n")

	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = io.WriteString(r.w, b.String())
}
