package dto

import "time"

type CreateRentalRequest struct {
	BookingID uint `json:"bookingId"`
}

type CheckoutRequest struct {
	RentalFormID uint `json:"rentalFormId"`
	PaymentType  int  `json:"paymentType"`
}

type RentalResponse struct {
	ID                 uint       `json:"id"`
	RoomID             uint       `json:"roomId"`
	RoomName           string     `json:"roomName"`
	RentalDate         string     `json:"rentalDate"`
	NumberOfRentalDays int        `json:"numberOfRentalDays"`
	TotalAmount        float64    `json:"totalAmount"`
	IsPaidAt           *time.Time `json:"isPaidAt,omitempty"`
	Paid               bool       `json:"paid"`
}

type PaymentQRRequest struct {
	RentalFormID uint `form:"rentalFormId"`
}

type PaymentQRResponse struct {
	RentalFormID uint    `json:"rentalFormId"`
	Amount       float64 `json:"amount"`
	QRCodeURL    string  `json:"qrCodeUrl"`
}

type PaymentStatusRequest struct {
	RentalFormID uint `json:"rentalFormId"`
	PaymentType  int  `json:"paymentType"`
}
