package invoices

import "time"

// GenerateInvoicesRequest drives one generation run. Dates arrive as
// YYYY-MM-DD strings and are parsed by the handler; the service month is
// normalized to the first of the month.
type GenerateInvoicesRequest struct {
	ServiceMonth time.Time
	InvoiceDate  time.Time
	DueDate      time.Time
	CustomerIDs  []string
}

// GenerateResult reports what a generation run did.
type GenerateResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

type ListInvoicesRequest struct {
	Status       InvoiceStatus
	ServiceMonth *time.Time
	CustomerID   string
}

type generatePayload struct {
	ServiceMonth string   `json:"service_month" validate:"required"`
	InvoiceDate  string   `json:"invoice_date" validate:"required"`
	DueDate      string   `json:"due_date" validate:"required"`
	CustomerIDs  []string `json:"customer_ids" validate:"required,min=1,dive,uuid"`
}

type updateStatusPayload struct {
	Status string `json:"status" validate:"required,oneof=draft sent paid"`
}
