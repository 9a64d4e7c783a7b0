package customers

import "time"

// Customer is a resident profile with the billing configuration used when
// generating monthly invoices.
type Customer struct {
	ID                    string    `json:"id" db:"id"`
	Name                  string    `json:"name" db:"name"`
	FirstName             *string   `json:"first_name,omitempty" db:"first_name"`
	MiddleName            *string   `json:"middle_name,omitempty" db:"middle_name"`
	LastName              *string   `json:"last_name,omitempty" db:"last_name"`
	ResponsibleFirstName  *string   `json:"responsible_first_name,omitempty" db:"responsible_first_name"`
	ResponsibleMiddleName *string   `json:"responsible_middle_name,omitempty" db:"responsible_middle_name"`
	ResponsibleLastName   *string   `json:"responsible_last_name,omitempty" db:"responsible_last_name"`
	Address               *string   `json:"address,omitempty" db:"address"`
	CityStateZip          *string   `json:"city_state_zip,omitempty" db:"city_state_zip"`
	Email                 *string   `json:"email,omitempty" db:"email"`
	Phone                 *string   `json:"phone,omitempty" db:"phone"`
	Notes                 *string   `json:"notes,omitempty" db:"notes"`
	IsActive              bool      `json:"is_active" db:"is_active"`
	MonthlyRate           float64   `json:"monthly_rate" db:"monthly_rate"`
	DailyRate             *float64  `json:"daily_rate,omitempty" db:"daily_rate"`
	DailyRateDays         *int      `json:"daily_rate_days,omitempty" db:"daily_rate_days"`
	Line1Desc             *string   `json:"additional_line_1_desc,omitempty" db:"additional_line_1_desc"`
	Line1Amount           *float64  `json:"additional_line_1_amount,omitempty" db:"additional_line_1_amount"`
	Line2Desc             *string   `json:"additional_line_2_desc,omitempty" db:"additional_line_2_desc"`
	Line2Amount           *float64  `json:"additional_line_2_amount,omitempty" db:"additional_line_2_amount"`
	Line3Desc             *string   `json:"additional_line_3_desc,omitempty" db:"additional_line_3_desc"`
	Line3Amount           *float64  `json:"additional_line_3_amount,omitempty" db:"additional_line_3_amount"`
	CreatedAt             time.Time `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time `json:"updated_at" db:"updated_at"`
}
