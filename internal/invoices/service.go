package invoices

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/caregarden/billing/internal/customers"
)

// CustomerSource supplies the active customers eligible for invoicing.
// Satisfied by customers.Repository.
type CustomerSource interface {
	ListActiveByIDs(ctx context.Context, ids []string) ([]customers.Customer, error)
}

// StatsInvalidator is notified after invoice mutations so cached dashboard
// figures get recomputed.
type StatsInvalidator interface {
	Bump(ctx context.Context) error
}

type Service struct {
	repo      Repository
	customers CustomerSource
	stats     StatsInvalidator
	logger    *slog.Logger
}

func NewService(repo Repository, customerSource CustomerSource, stats StatsInvalidator, logger *slog.Logger) *Service {
	return &Service{repo: repo, customers: customerSource, stats: stats, logger: logger}
}

// Generate produces one invoice per eligible customer for the service month.
// Customers already invoiced for that month are skipped; the input list is
// re-filtered to active customers regardless of what the caller selected.
// The batch persists in a single transaction.
func (s *Service) Generate(ctx context.Context, req GenerateInvoicesRequest) (*GenerateResult, error) {
	serviceMonth := firstOfMonth(req.ServiceMonth)
	year := req.InvoiceDate.Year()

	candidates, err := s.customers.ListActiveByIDs(ctx, req.CustomerIDs)
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no active customers selected", ErrNothingToGenerate)
	}

	result := &GenerateResult{}
	var batch []Invoice
	for _, c := range candidates {
		exists, err := s.repo.ExistsForMonth(ctx, c.ID, serviceMonth)
		if err != nil {
			return nil, fmt.Errorf("check existing invoice: %w", err)
		}
		if exists {
			result.Skipped++
			continue
		}

		// A sequence error aborts the whole run; no partial record is left
		// behind for this customer.
		seq, err := s.repo.NextSequence(ctx, year)
		if err != nil {
			return nil, err
		}

		dailyTotal := DailySubtotal(c.DailyRate, c.DailyRateDays)
		var dailyTotalPtr *float64
		if dailyTotal > 0 {
			dailyTotalPtr = &dailyTotal
		}

		batch = append(batch, Invoice{
			CustomerID:           c.ID,
			InvoiceNumber:        FormatInvoiceNumber(year, seq),
			ServiceMonth:         serviceMonth,
			InvoiceDate:          req.InvoiceDate,
			DueDate:              req.DueDate,
			CustomerName:         c.Name,
			CustomerAddress:      c.Address,
			CustomerCityStateZip: c.CityStateZip,
			MonthlyRate:          c.MonthlyRate,
			DailyRate:            c.DailyRate,
			DailyRateDays:        c.DailyRateDays,
			DailyRateTotal:       dailyTotalPtr,
			Line1Desc:            c.Line1Desc,
			Line1Amount:          c.Line1Amount,
			Line2Desc:            c.Line2Desc,
			Line2Amount:          c.Line2Amount,
			Line3Desc:            c.Line3Desc,
			Line3Amount:          c.Line3Amount,
			TotalAmount:          InvoiceTotal(c.MonthlyRate, c.Line1Amount, c.Line2Amount, c.Line3Amount, c.DailyRate, c.DailyRateDays),
			Status:               StatusDraft,
		})
	}

	if len(batch) == 0 {
		return nil, fmt.Errorf("%w: all invoices already exist for this service month", ErrNothingToGenerate)
	}

	created, err := s.repo.CreateBatch(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("persist invoices: %w", err)
	}
	// Rows lost to the insert conflict backstop count as skipped, same as
	// rows caught by the pre-check.
	result.Skipped += len(batch) - created
	result.Created = created

	if result.Created == 0 {
		return nil, fmt.Errorf("%w: all invoices already exist for this service month", ErrNothingToGenerate)
	}

	s.bumpStats(ctx)
	return result, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Invoice, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, req ListInvoicesRequest) ([]Invoice, error) {
	return s.repo.List(ctx, req)
}

// History lists every invoice generated for one customer, newest first.
func (s *Service) History(ctx context.Context, customerID string) ([]Invoice, error) {
	return s.repo.List(ctx, ListInvoicesRequest{CustomerID: customerID})
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status InvoiceStatus) (*Invoice, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	s.bumpStats(ctx)
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.bumpStats(ctx)
	return nil
}

func (s *Service) bumpStats(ctx context.Context) {
	if s.stats == nil {
		return
	}
	if err := s.stats.Bump(ctx); err != nil && s.logger != nil {
		s.logger.Warn("bump dashboard stats", slog.Any("error", err))
	}
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// InvoiceDates are the defaults offered for a generation run: the current
// month as service month, today as invoice date, and the 15th of next month
// as due date.
type InvoiceDates struct {
	ServiceMonth time.Time `json:"service_month"`
	InvoiceDate  time.Time `json:"invoice_date"`
	DueDate      time.Time `json:"due_date"`
}

// DefaultDates computes the default generation dates from a reference day.
func DefaultDates(ref time.Time) InvoiceDates {
	next := firstOfMonth(ref).AddDate(0, 1, 0)
	return InvoiceDates{
		ServiceMonth: firstOfMonth(ref),
		InvoiceDate:  ref,
		DueDate:      time.Date(next.Year(), next.Month(), 15, 0, 0, 0, 0, time.UTC),
	}
}
