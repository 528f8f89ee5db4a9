package intake

type CreateDeviceEntryRequest struct {
	SerialNumber        string  `json:"serial_number"`
	CustomerName        string  `json:"customer_name" validate:"required"`
	MobileNumber        string  `json:"mobile_number" validate:"required"`
	VillageName         string  `json:"village_name"`
	Address             string  `json:"address"`
	DeviceType          string  `json:"device_type" validate:"required"`
	DeviceBrand         string  `json:"device_brand"`
	DeviceModel         string  `json:"device_model"`
	WindingType         string  `json:"winding_type" validate:"omitempty,oneof=copper aluminium other"`
	MotorHP             string  `json:"motor_hp"`
	ProblemDescription  string  `json:"problem_description" validate:"required"`
	AccessoriesReceived string  `json:"accessories_received"`
	EstimatedCost       float64 `json:"estimated_cost"`
	AdvancePaid         float64 `json:"advance_paid"`
	ExpectedDelivery    string  `json:"expected_delivery"`
	TechnicianName      string  `json:"technician_name"`
	Notes               string  `json:"notes"`
}

// UpdateDeviceEntryRequest is a partial patch; nil fields are left untouched.
// Date fields use the YYYY-MM-DD wire format.
type UpdateDeviceEntryRequest struct {
	SerialNumber        *string  `json:"serial_number"`
	CustomerName        *string  `json:"customer_name"`
	MobileNumber        *string  `json:"mobile_number"`
	VillageName         *string  `json:"village_name"`
	Address             *string  `json:"address"`
	DeviceType          *string  `json:"device_type"`
	DeviceBrand         *string  `json:"device_brand"`
	DeviceModel         *string  `json:"device_model"`
	WindingType         *string  `json:"winding_type"`
	MotorHP             *string  `json:"motor_hp"`
	ProblemDescription  *string  `json:"problem_description"`
	AccessoriesReceived *string  `json:"accessories_received"`
	EstimatedCost       *float64 `json:"estimated_cost"`
	AdvancePaid         *float64 `json:"advance_paid"`
	FinalCost           *float64 `json:"final_cost"`
	Status              *string  `json:"status"`
	ExpectedDelivery    *string  `json:"expected_delivery"`
	DeliveredDate       *string  `json:"delivered_date"`
	TechnicianName      *string  `json:"technician_name"`
	Notes               *string  `json:"notes"`
}
