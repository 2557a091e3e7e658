package models

import "time"

// Address holds the six required residence sub-fields of an application.
type Address struct {
	Village       string `db:"village" json:"village"`
	PostOffice    string `db:"post_office" json:"postOffice"`
	PoliceStation string `db:"police_station" json:"policeStation"`
	District      string `db:"district" json:"district"`
	State         string `db:"state" json:"state"`
	PinCode       string `db:"pin_code" json:"pinCode"`
}

// Application is the central workflow entity: at most one per student,
// created in the unpaid state with its marksheet reference already set.
// The four payment fields are all-or-nothing; ConfirmPayment is the only
// path that populates them.
type Application struct {
	ID        string `db:"id" json:"id"`
	StudentID string `db:"student_id" json:"studentId"`
	Address   `json:"address"`
	MarksheetURL  string     `db:"marksheet_url" json:"marksheetUrl"`
	PaymentID     *string    `db:"payment_id" json:"paymentId,omitempty"`
	PaymentAmount *float64   `db:"payment_amount" json:"paymentAmount,omitempty"`
	PaymentMode   *string    `db:"payment_mode" json:"paymentMode,omitempty"`
	PaymentDate   *time.Time `db:"payment_date" json:"paymentDate,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updatedAt"`
}

// Paid reports whether payment has been confirmed.
func (a *Application) Paid() bool {
	return a.PaymentID != nil
}

// ApplicationDetail joins an application with its owning student's profile,
// as returned by the my-application and receipt endpoints.
type ApplicationDetail struct {
	Application
	Student Student `json:"student"`
}
