package models

import "time"

// RentalForm is the operational record created at check-in. A non-nil
// IsPaidAt marks the stay as paid and checked out.
type RentalForm struct {
	ID                 uint       `json:"id" gorm:"primaryKey"`
	RoomID             uint       `json:"roomId" gorm:"index"`
	RentalDate         time.Time  `json:"rentalDate"`
	NumberOfRentalDays int        `json:"numberOfRentalDays"`
	IsPaidAt           *time.Time `json:"isPaidAt,omitempty"`
	PaymentType        *int       `json:"paymentType,omitempty"`
	TotalAmount        float64    `json:"totalAmount"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Paid reports whether checkout payment has been recorded
func (f *RentalForm) Paid() bool {
	return f.IsPaidAt != nil
}
