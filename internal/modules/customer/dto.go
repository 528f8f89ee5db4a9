package customer

type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

type UpdateCustomerRequest struct {
	Name         *string  `json:"name"`
	Email        *string  `json:"email"`
	Phone        *string  `json:"phone"`
	Address      *string  `json:"address"`
	TotalRepairs *int     `json:"total_repairs"`
	TotalSpent   *float64 `json:"total_spent"`
	Notes        *string  `json:"notes"`
}
