package customers

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	customers map[string]*Customer
	nextID    int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{customers: make(map[string]*Customer)}
}

func (r *memoryRepo) Get(ctx context.Context, id string) (*Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *memoryRepo) List(ctx context.Context, req ListCustomersRequest) ([]Customer, error) {
	var out []Customer
	for _, c := range r.customers {
		switch req.Filter {
		case FilterActive:
			if !c.IsActive {
				continue
			}
		case FilterInactive:
			if c.IsActive {
				continue
			}
		}
		if req.Search != nil && *req.Search != "" {
			needle := strings.ToLower(*req.Search)
			first := ""
			if c.FirstName != nil {
				first = *c.FirstName
			}
			last := ""
			if c.LastName != nil {
				last = *c.LastName
			}
			haystack := strings.ToLower(c.Name + " " + first + " " + last)
			if !strings.Contains(haystack, needle) {
				continue
			}
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memoryRepo) ListActiveByIDs(ctx context.Context, ids []string) ([]Customer, error) {
	var out []Customer
	for _, id := range ids {
		c, ok := r.customers[id]
		if !ok || !c.IsActive {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *memoryRepo) Create(ctx context.Context, customer Customer) (*Customer, error) {
	if customer.ID == "" {
		r.nextID++
		customer.ID = fmt.Sprintf("cust-%d", r.nextID)
	}
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = customer.CreatedAt
	stored := customer
	r.customers[stored.ID] = &stored
	return &customer, nil
}

func (r *memoryRepo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	c, ok := r.customers[id]
	if !ok {
		return ErrNotFound
	}
	for col, v := range updates {
		switch col {
		case "name":
			c.Name = v.(string)
		case "first_name":
			c.FirstName = toStringPtr(v)
		case "middle_name":
			c.MiddleName = toStringPtr(v)
		case "last_name":
			c.LastName = toStringPtr(v)
		case "address":
			c.Address = toStringPtr(v)
		case "is_active":
			c.IsActive = v.(bool)
		case "monthly_rate":
			c.MonthlyRate = v.(float64)
		case "daily_rate":
			rate := v.(float64)
			c.DailyRate = &rate
		case "daily_rate_days":
			days := v.(int)
			c.DailyRateDays = &days
		}
	}
	c.UpdatedAt = time.Now()
	return nil
}

func (r *memoryRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.customers[id]; !ok {
		return ErrNotFound
	}
	delete(r.customers, id)
	return nil
}

func toStringPtr(v interface{}) *string {
	switch val := v.(type) {
	case string:
		return &val
	case *string:
		return val
	default:
		return nil
	}
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func sptr(v string) *string   { return &v }

func TestCreateCustomer(t *testing.T) {
	svc := NewService(newMemoryRepo())

	created, err := svc.Create(context.Background(), CreateCustomerRequest{
		Name:          "Margaret Olsen",
		MonthlyRate:   1200,
		DailyRate:     fptr(40),
		DailyRateDays: iptr(5),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.True(t, created.IsActive, "new residents start active")
	require.Equal(t, 1200.0, created.MonthlyRate)
}

func TestCreateCustomerDailyRatePair(t *testing.T) {
	svc := NewService(newMemoryRepo())

	_, err := svc.Create(context.Background(), CreateCustomerRequest{
		Name:        "Margaret Olsen",
		MonthlyRate: 1200,
		DailyRate:   fptr(40),
	})
	require.ErrorIs(t, err, ErrDailyRatePair)

	_, err = svc.Create(context.Background(), CreateCustomerRequest{
		Name:          "Margaret Olsen",
		MonthlyRate:   1200,
		DailyRateDays: iptr(5),
	})
	require.ErrorIs(t, err, ErrDailyRatePair)

	// A zero-valued half counts as absent.
	_, err = svc.Create(context.Background(), CreateCustomerRequest{
		Name:          "Margaret Olsen",
		MonthlyRate:   1200,
		DailyRate:     fptr(0),
		DailyRateDays: iptr(5),
	})
	require.ErrorIs(t, err, ErrDailyRatePair)
}

func TestUpdateCustomerMergesDailyRatePair(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateCustomerRequest{
		Name:          "Margaret Olsen",
		MonthlyRate:   1200,
		DailyRate:     fptr(40),
		DailyRateDays: iptr(5),
	})
	require.NoError(t, err)

	// Updating just the rate keeps the stored days, so the pair stays valid.
	updated, err := svc.Update(context.Background(), created.ID, UpdateCustomerRequest{
		DailyRate: fptr(45),
	})
	require.NoError(t, err)
	require.Equal(t, 45.0, *updated.DailyRate)
	require.Equal(t, 5, *updated.DailyRateDays)

	// Zeroing one half while the other stays positive breaks the pair.
	_, err = svc.Update(context.Background(), created.ID, UpdateCustomerRequest{
		DailyRate: fptr(0),
	})
	require.ErrorIs(t, err, ErrDailyRatePair)
}

func TestUpdateCustomerNotFound(t *testing.T) {
	svc := NewService(newMemoryRepo())
	_, err := svc.Update(context.Background(), "missing", UpdateCustomerRequest{Name: sptr("X")})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateNameFields(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateCustomerRequest{
		Name:        "Margaret Olsen",
		MonthlyRate: 1200,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateNameFields(context.Background(), created.ID, UpdateNameFieldsRequest{
		FirstName:  "Margaret",
		MiddleName: sptr("Ann"),
		LastName:   "Olsen",
	})
	require.NoError(t, err)
	require.Equal(t, "Margaret Ann Olsen", updated.Name)
	require.Equal(t, "Margaret", *updated.FirstName)

	// An empty middle name is left out of the recomputed full name.
	updated, err = svc.UpdateNameFields(context.Background(), created.ID, UpdateNameFieldsRequest{
		FirstName: "Margaret",
		LastName:  "Olsen",
	})
	require.NoError(t, err)
	require.Equal(t, "Margaret Olsen", updated.Name)
}

func TestSetActive(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateCustomerRequest{Name: "Margaret Olsen", MonthlyRate: 1200})
	require.NoError(t, err)

	updated, err := svc.SetActive(context.Background(), created.ID, false)
	require.NoError(t, err)
	require.False(t, updated.IsActive)

	updated, err = svc.SetActive(context.Background(), created.ID, true)
	require.NoError(t, err)
	require.True(t, updated.IsActive)
}

func TestListFiltersAndSearch(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	a, err := svc.Create(context.Background(), CreateCustomerRequest{Name: "Alice Ward", MonthlyRate: 900})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), CreateCustomerRequest{Name: "Bruno Stein", MonthlyRate: 1100})
	require.NoError(t, err)

	_, err = svc.SetActive(context.Background(), a.ID, false)
	require.NoError(t, err)

	all, err := svc.List(context.Background(), ListCustomersRequest{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	active, err := svc.List(context.Background(), ListCustomersRequest{Filter: FilterActive})
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, "Bruno Stein", active[0].Name)

	inactive, err := svc.List(context.Background(), ListCustomersRequest{Filter: FilterInactive})
	require.NoError(t, err)
	require.Len(t, inactive, 1)
	require.Equal(t, "Alice Ward", inactive[0].Name)

	found, err := svc.List(context.Background(), ListCustomersRequest{Search: sptr("bruno")})
	require.NoError(t, err)
	require.Len(t, found, 1)
}

func TestDeleteCustomer(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateCustomerRequest{Name: "Margaret Olsen", MonthlyRate: 1200})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	_, err = svc.Get(context.Background(), created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrNotFound)
}
