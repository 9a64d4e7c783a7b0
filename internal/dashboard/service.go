package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Summary is the aggregate view shown on the landing dashboard.
type Summary struct {
	ServiceMonth     time.Time `json:"service_month"`
	ActiveCustomers  int       `json:"active_customers"`
	DraftInvoices    int       `json:"draft_invoices"`
	SentInvoices     int       `json:"sent_invoices"`
	PaidInvoices     int       `json:"paid_invoices"`
	OutstandingTotal float64   `json:"outstanding_total"`
}

type Service struct {
	repo  Repository
	cache *Cache
}

func NewService(repo Repository, cache *Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// Summary returns the dashboard figures for the given service month, cached
// behind a versioned Redis key.
func (s *Service) Summary(ctx context.Context, serviceMonth time.Time) (*Summary, error) {
	serviceMonth = time.Date(serviceMonth.Year(), serviceMonth.Month(), 1, 0, 0, 0, 0, time.UTC)

	key, err := s.cache.BuildKey(ctx, "dashboard", "summary", serviceMonth.Format("2006-01"))
	if err != nil {
		return nil, err
	}

	var summary Summary
	err = s.cache.FetchJSON(ctx, key, &summary, func(ctx context.Context) (interface{}, error) {
		return s.load(ctx, serviceMonth)
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// Warm recomputes and stores the current month's summary, ignoring any
// cached value. Used by the scheduled warmup job.
func (s *Service) Warm(ctx context.Context, now time.Time) error {
	if err := s.cache.Bump(ctx); err != nil {
		return err
	}
	_, err := s.Summary(ctx, now)
	return err
}

func (s *Service) load(ctx context.Context, serviceMonth time.Time) (*Summary, error) {
	summary := &Summary{ServiceMonth: serviceMonth}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.repo.CountActiveCustomers(ctx)
		if err == nil {
			summary.ActiveCustomers = count
		}
		return err
	})
	g.Go(func() error {
		counts, err := s.repo.CountInvoicesByStatus(ctx, serviceMonth)
		if err == nil {
			summary.DraftInvoices = counts["draft"]
			summary.SentInvoices = counts["sent"]
			summary.PaidInvoices = counts["paid"]
		}
		return err
	})
	g.Go(func() error {
		total, err := s.repo.OutstandingTotal(ctx)
		if err == nil {
			summary.OutstandingTotal = total
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summary, nil
}
