package settings

import (
	"errors"
	"time"
)

// ErrNotFound indicates the singleton settings row is missing.
var ErrNotFound = errors.New("settings: not found")

// FacilitySettings is the singleton record describing the billing entity
// printed on every invoice.
type FacilitySettings struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	CityStateZip string    `json:"city_state_zip"`
	Phone        *string   `json:"phone,omitempty"`
	Fax          *string   `json:"fax,omitempty"`
	Email        *string   `json:"email,omitempty"`
	Website      *string   `json:"website,omitempty"`
	ThankYouNote *string   `json:"thank_you_note,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UpdateSettingsRequest carries partial updates to the singleton row.
type UpdateSettingsRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Address      *string `json:"address,omitempty" validate:"omitempty,max=200"`
	CityStateZip *string `json:"city_state_zip,omitempty" validate:"omitempty,max=200"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Fax          *string `json:"fax,omitempty" validate:"omitempty,max=50"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Website      *string `json:"website,omitempty" validate:"omitempty,max=200"`
	ThankYouNote *string `json:"thank_you_note,omitempty"`
}
