package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrDailyRatePair is returned when only one half of the daily rate
// configuration is supplied.
var ErrDailyRatePair = errors.New("customers: daily_rate and daily_rate_days must be provided together")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateCustomerRequest) (*Customer, error) {
	if err := validateDailyRatePair(req.DailyRate, req.DailyRateDays); err != nil {
		return nil, err
	}

	customer := Customer{
		Name:                  req.Name,
		FirstName:             req.FirstName,
		MiddleName:            req.MiddleName,
		LastName:              req.LastName,
		ResponsibleFirstName:  req.ResponsibleFirstName,
		ResponsibleMiddleName: req.ResponsibleMiddleName,
		ResponsibleLastName:   req.ResponsibleLastName,
		Address:               req.Address,
		CityStateZip:          req.CityStateZip,
		Email:                 req.Email,
		Phone:                 req.Phone,
		Notes:                 req.Notes,
		IsActive:              true,
		MonthlyRate:           req.MonthlyRate,
		DailyRate:             req.DailyRate,
		DailyRateDays:         req.DailyRateDays,
		Line1Desc:             req.Line1Desc,
		Line1Amount:           req.Line1Amount,
		Line2Desc:             req.Line2Desc,
		Line2Amount:           req.Line2Amount,
		Line3Desc:             req.Line3Desc,
		Line3Amount:           req.Line3Amount,
	}

	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateCustomerRequest) (*Customer, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	dailyRate := existing.DailyRate
	if req.DailyRate != nil {
		dailyRate = req.DailyRate
	}
	dailyDays := existing.DailyRateDays
	if req.DailyRateDays != nil {
		dailyDays = req.DailyRateDays
	}
	if err := validateDailyRatePair(dailyRate, dailyDays); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.MiddleName != nil {
		updates["middle_name"] = *req.MiddleName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.ResponsibleFirstName != nil {
		updates["responsible_first_name"] = *req.ResponsibleFirstName
	}
	if req.ResponsibleMiddleName != nil {
		updates["responsible_middle_name"] = *req.ResponsibleMiddleName
	}
	if req.ResponsibleLastName != nil {
		updates["responsible_last_name"] = *req.ResponsibleLastName
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.CityStateZip != nil {
		updates["city_state_zip"] = *req.CityStateZip
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.MonthlyRate != nil {
		updates["monthly_rate"] = *req.MonthlyRate
	}
	if req.DailyRate != nil {
		updates["daily_rate"] = *req.DailyRate
	}
	if req.DailyRateDays != nil {
		updates["daily_rate_days"] = *req.DailyRateDays
	}
	if req.Line1Desc != nil {
		updates["additional_line_1_desc"] = *req.Line1Desc
	}
	if req.Line1Amount != nil {
		updates["additional_line_1_amount"] = *req.Line1Amount
	}
	if req.Line2Desc != nil {
		updates["additional_line_2_desc"] = *req.Line2Desc
	}
	if req.Line2Amount != nil {
		updates["additional_line_2_amount"] = *req.Line2Amount
	}
	if req.Line3Desc != nil {
		updates["additional_line_3_desc"] = *req.Line3Desc
	}
	if req.Line3Amount != nil {
		updates["additional_line_3_amount"] = *req.Line3Amount
	}

	if len(updates) == 0 {
		return existing, nil
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return s.repo.Get(ctx, id)
}

// UpdateNameFields sets the split name fields and recomputes the legacy full
// name used on invoice snapshots.
func (s *Service) UpdateNameFields(ctx context.Context, id string, req UpdateNameFieldsRequest) (*Customer, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}

	parts := []string{req.FirstName}
	if req.MiddleName != nil && *req.MiddleName != "" {
		parts = append(parts, *req.MiddleName)
	}
	parts = append(parts, req.LastName)

	updates := map[string]interface{}{
		"first_name":  req.FirstName,
		"middle_name": req.MiddleName,
		"last_name":   req.LastName,
		"name":        strings.Join(parts, " "),
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("update customer names: %w", err)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) SetActive(ctx context.Context, id string, isActive bool) (*Customer, error) {
	if err := s.repo.Update(ctx, id, map[string]interface{}{"is_active": isActive}); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Get(ctx context.Context, id string) (*Customer, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, req ListCustomersRequest) ([]Customer, error) {
	if req.Filter == "" {
		req.Filter = FilterAll
	}
	return s.repo.List(ctx, req)
}

// Delete removes the customer. Previously generated invoices are preserved:
// they carry denormalized snapshots and stay valid after the profile is gone.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateDailyRatePair(rate *float64, days *int) error {
	hasRate := rate != nil && *rate > 0
	hasDays := days != nil && *days > 0
	if hasRate != hasDays {
		return ErrDailyRatePair
	}
	return nil
}
