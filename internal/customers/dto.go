package customers

// ListFilter selects which customers a listing returns.
type ListFilter string

const (
	FilterAll      ListFilter = "all"
	FilterActive   ListFilter = "active"
	FilterInactive ListFilter = "inactive"
)

type CreateCustomerRequest struct {
	Name                  string   `json:"name" validate:"required,max=200"`
	FirstName             *string  `json:"first_name,omitempty" validate:"omitempty,max=100"`
	MiddleName            *string  `json:"middle_name,omitempty" validate:"omitempty,max=100"`
	LastName              *string  `json:"last_name,omitempty" validate:"omitempty,max=100"`
	ResponsibleFirstName  *string  `json:"responsible_first_name,omitempty" validate:"omitempty,max=100"`
	ResponsibleMiddleName *string  `json:"responsible_middle_name,omitempty" validate:"omitempty,max=100"`
	ResponsibleLastName   *string  `json:"responsible_last_name,omitempty" validate:"omitempty,max=100"`
	Address               *string  `json:"address,omitempty" validate:"omitempty,max=200"`
	CityStateZip          *string  `json:"city_state_zip,omitempty" validate:"omitempty,max=200"`
	Email                 *string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone                 *string  `json:"phone,omitempty" validate:"omitempty,max=50"`
	Notes                 *string  `json:"notes,omitempty"`
	MonthlyRate           float64  `json:"monthly_rate" validate:"gte=0"`
	DailyRate             *float64 `json:"daily_rate,omitempty" validate:"omitempty,gte=0"`
	DailyRateDays         *int     `json:"daily_rate_days,omitempty" validate:"omitempty,gte=0"`
	Line1Desc             *string  `json:"additional_line_1_desc,omitempty" validate:"omitempty,max=200"`
	Line1Amount           *float64 `json:"additional_line_1_amount,omitempty" validate:"omitempty,gte=0"`
	Line2Desc             *string  `json:"additional_line_2_desc,omitempty" validate:"omitempty,max=200"`
	Line2Amount           *float64 `json:"additional_line_2_amount,omitempty" validate:"omitempty,gte=0"`
	Line3Desc             *string  `json:"additional_line_3_desc,omitempty" validate:"omitempty,max=200"`
	Line3Amount           *float64 `json:"additional_line_3_amount,omitempty" validate:"omitempty,gte=0"`
}

type UpdateCustomerRequest struct {
	Name                  *string  `json:"name,omitempty" validate:"omitempty,max=200"`
	FirstName             *string  `json:"first_name,omitempty"`
	MiddleName            *string  `json:"middle_name,omitempty"`
	LastName              *string  `json:"last_name,omitempty"`
	ResponsibleFirstName  *string  `json:"responsible_first_name,omitempty"`
	ResponsibleMiddleName *string  `json:"responsible_middle_name,omitempty"`
	ResponsibleLastName   *string  `json:"responsible_last_name,omitempty"`
	Address               *string  `json:"address,omitempty"`
	CityStateZip          *string  `json:"city_state_zip,omitempty"`
	Email                 *string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone                 *string  `json:"phone,omitempty"`
	Notes                 *string  `json:"notes,omitempty"`
	IsActive              *bool    `json:"is_active,omitempty"`
	MonthlyRate           *float64 `json:"monthly_rate,omitempty" validate:"omitempty,gte=0"`
	DailyRate             *float64 `json:"daily_rate,omitempty" validate:"omitempty,gte=0"`
	DailyRateDays         *int     `json:"daily_rate_days,omitempty" validate:"omitempty,gte=0"`
	Line1Desc             *string  `json:"additional_line_1_desc,omitempty"`
	Line1Amount           *float64 `json:"additional_line_1_amount,omitempty" validate:"omitempty,gte=0"`
	Line2Desc             *string  `json:"additional_line_2_desc,omitempty"`
	Line2Amount           *float64 `json:"additional_line_2_amount,omitempty" validate:"omitempty,gte=0"`
	Line3Desc             *string  `json:"additional_line_3_desc,omitempty"`
	Line3Amount           *float64 `json:"additional_line_3_amount,omitempty" validate:"omitempty,gte=0"`
}

type UpdateNameFieldsRequest struct {
	FirstName  string  `json:"first_name" validate:"required,max=100"`
	MiddleName *string `json:"middle_name,omitempty" validate:"omitempty,max=100"`
	LastName   string  `json:"last_name" validate:"required,max=100"`
}

type ListCustomersRequest struct {
	Filter ListFilter `json:"filter"`
	Search *string    `json:"search,omitempty"`
}
