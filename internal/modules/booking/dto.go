package booking

type CreateBookingRequest struct {
	CustomerName     string `json:"customer_name" validate:"required"`
	Phone            string `json:"phone" validate:"required"`
	Email            string `json:"email" validate:"omitempty,email"`
	DeviceType       string `json:"device_type" validate:"required"`
	Brand            string `json:"brand"`
	IssueDescription string `json:"issue_description" validate:"required"`
}

// UpdateBookingRequest is a partial patch; nil fields are left untouched.
// Date fields use the YYYY-MM-DD wire format.
type UpdateBookingRequest struct {
	Status          *string  `json:"status"`
	Priority        *string  `json:"priority"`
	EstimatedCost   *float64 `json:"estimated_cost"`
	ActualCost      *float64 `json:"actual_cost"`
	TechnicianName  *string  `json:"technician_name"`
	TechnicianPhone *string  `json:"technician_phone"`
	ScheduledDate   *string  `json:"scheduled_date"`
	CompletedDate   *string  `json:"completed_date"`
	WarrantyUntil   *string  `json:"warranty_until"`
	Notes           *string  `json:"notes"`
}
