package dto

// SubmitApplicationRequest carries the six required address fields posted
// alongside the marksheet file. Field names match the multipart form keys.
type SubmitApplicationRequest struct {
	Village       string `form:"village" json:"village" validate:"required"`
	PostOffice    string `form:"postOffice" json:"postOffice" validate:"required"`
	PoliceStation string `form:"policeStation" json:"policeStation" validate:"required"`
	District      string `form:"district" json:"district" validate:"required"`
	State         string `form:"state" json:"state" validate:"required"`
	PinCode       string `form:"pinCode" json:"pinCode" validate:"required"`
}

// ConfirmPaymentRequest records the simulated gateway result.
type ConfirmPaymentRequest struct {
	PaymentID     string  `json:"paymentId" validate:"required"`
	PaymentAmount float64 `json:"paymentAmount" validate:"required,gt=0"`
}
