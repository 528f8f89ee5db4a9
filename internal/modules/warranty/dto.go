package warranty

type CreateWarrantyRequest struct {
	CustomerName       string `json:"customer_name" validate:"required"`
	CustomerPhone      string `json:"customer_phone" validate:"required"`
	DeviceType         string `json:"device_type" validate:"required"`
	DeviceBrand        string `json:"device_brand"`
	SerialNumber       string `json:"serial_number"`
	StartDate          string `json:"start_date"`
	WarrantyDays       int    `json:"warranty_days" validate:"required,gt=0"`
	ServiceDescription string `json:"service_description"`
	TechnicianName     string `json:"technician_name"`
}

// UpdateWarrantyRequest is a partial patch; status changes other than void
// go through here, voiding has its own endpoint.
type UpdateWarrantyRequest struct {
	CustomerName       *string `json:"customer_name"`
	CustomerPhone      *string `json:"customer_phone"`
	DeviceType         *string `json:"device_type"`
	DeviceBrand        *string `json:"device_brand"`
	SerialNumber       *string `json:"serial_number"`
	EndDate            *string `json:"end_date"`
	ServiceDescription *string `json:"service_description"`
	TechnicianName     *string `json:"technician_name"`
	Status             *string `json:"status"`
}

type CreateClaimRequest struct {
	IssueDescription string `json:"issue_description" validate:"required"`
	Resolution       string `json:"resolution"`
}
