package invoices

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/caregarden/billing/internal/settings"
)

//go:embed templates/print.html
var printFS embed.FS

var printTemplate = template.Must(template.ParseFS(printFS, "templates/print.html"))

var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders a dollar amount in en-US notation, e.g. $1,475.00.
func FormatCurrency(amount float64) string {
	return currencyPrinter.Sprintf("$%.2f", amount)
}

type printLine struct {
	Desc   string
	Amount string
}

type printData struct {
	Invoice        *Invoice
	Facility       *settings.FacilitySettings
	ServiceMonth   string
	InvoiceDate    string
	DueDate        string
	MonthlyRate    string
	DailyRate      string
	DailyRateTotal string
	Lines          []printLine
	Total          string
}

// RenderPrintHTML produces the printable invoice document.
func RenderPrintHTML(inv *Invoice, facility *settings.FacilitySettings) (string, error) {
	data := printData{
		Invoice:      inv,
		Facility:     facility,
		ServiceMonth: inv.ServiceMonth.Format("January 2006"),
		InvoiceDate:  inv.InvoiceDate.Format("January 2, 2006"),
		DueDate:      inv.DueDate.Format("January 2, 2006"),
		MonthlyRate:  FormatCurrency(inv.MonthlyRate),
		Total:        FormatCurrency(inv.TotalAmount),
	}

	if inv.DailyRateTotal != nil && *inv.DailyRateTotal > 0 {
		data.DailyRateTotal = FormatCurrency(*inv.DailyRateTotal)
		if inv.DailyRate != nil {
			data.DailyRate = FormatCurrency(*inv.DailyRate)
		}
	}

	addLine := func(desc *string, amount *float64, fallback string) {
		if amount == nil {
			return
		}
		label := fallback
		if desc != nil && *desc != "" {
			label = *desc
		}
		data.Lines = append(data.Lines, printLine{Desc: label, Amount: FormatCurrency(*amount)})
	}
	addLine(inv.Line1Desc, inv.Line1Amount, "Additional charge")
	addLine(inv.Line2Desc, inv.Line2Amount, "Additional charge")
	addLine(inv.Line3Desc, inv.Line3Amount, "Additional charge")

	var buf bytes.Buffer
	if err := printTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render invoice %s: %w", inv.InvoiceNumber, err)
	}
	return buf.String(), nil
}

// parseDate parses the YYYY-MM-DD values the API accepts.
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
