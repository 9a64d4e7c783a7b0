package settings

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context) (*FacilitySettings, error) {
	return s.repo.Get(ctx)
}

// Update applies partial changes to the singleton row. The row must already
// exist; settings are seeded with the schema, never created through the API.
func (s *Service) Update(ctx context.Context, req UpdateSettingsRequest) (*FacilitySettings, error) {
	existing, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.CityStateZip != nil {
		updates["city_state_zip"] = *req.CityStateZip
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Fax != nil {
		updates["fax"] = *req.Fax
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}
	if req.ThankYouNote != nil {
		updates["thank_you_note"] = *req.ThankYouNote
	}

	if len(updates) == 0 {
		return existing, nil
	}

	if err := s.repo.Update(ctx, existing.ID, updates); err != nil {
		return nil, fmt.Errorf("update facility settings: %w", err)
	}
	return s.repo.Get(ctx)
}
