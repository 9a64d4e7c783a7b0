package invoices

import (
	"errors"
	"time"
)

// InvoiceStatus enumerates invoice statuses. Every status is settable from
// any other; there is no enforced ordering.
type InvoiceStatus string

const (
	StatusDraft InvoiceStatus = "draft"
	StatusSent  InvoiceStatus = "sent"
	StatusPaid  InvoiceStatus = "paid"
)

// Valid reports whether s is a known status.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid:
		return true
	}
	return false
}

var (
	ErrNotFound = errors.New("invoices: not found")
	// ErrNothingToGenerate is the distinct no-op condition: every candidate
	// was skipped (already invoiced or not an active customer).
	ErrNothingToGenerate = errors.New("invoices: nothing to generate")
	ErrInvalidStatus     = errors.New("invoices: invalid status")
)

// Invoice is an immutable snapshot of a customer's billing configuration at
// generation time. It is never re-derived from the live customer record.
type Invoice struct {
	ID                   string        `json:"id"`
	CustomerID           string        `json:"customer_id"`
	InvoiceNumber        string        `json:"invoice_number"`
	ServiceMonth         time.Time     `json:"service_month"`
	InvoiceDate          time.Time     `json:"invoice_date"`
	DueDate              time.Time     `json:"due_date"`
	CustomerName         string        `json:"customer_name"`
	CustomerAddress      *string       `json:"customer_address,omitempty"`
	CustomerCityStateZip *string       `json:"customer_city_state_zip,omitempty"`
	MonthlyRate          float64       `json:"monthly_rate"`
	DailyRate            *float64      `json:"daily_rate,omitempty"`
	DailyRateDays        *int          `json:"daily_rate_days,omitempty"`
	DailyRateTotal       *float64      `json:"daily_rate_total,omitempty"`
	Line1Desc            *string       `json:"line_1_desc,omitempty"`
	Line1Amount          *float64      `json:"line_1_amount,omitempty"`
	Line2Desc            *string       `json:"line_2_desc,omitempty"`
	Line2Amount          *float64      `json:"line_2_amount,omitempty"`
	Line3Desc            *string       `json:"line_3_desc,omitempty"`
	Line3Amount          *float64      `json:"line_3_amount,omitempty"`
	TotalAmount          float64       `json:"total_amount"`
	Status               InvoiceStatus `json:"status"`
	Notes                *string       `json:"notes,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}
