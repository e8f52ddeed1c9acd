package models

import (
	"time"

	"stayhub/constants"
)

// Booking occupies its room for the half-open day interval
// [BookingDate, BookingDate + RentalDays). Only PENDING and COMMITED
// bookings count as live occupancy.
type Booking struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	RoomID      uint      `json:"roomId" gorm:"index"`
	Room        Room      `json:"room" gorm:"foreignKey:RoomID"`
	BookingDate time.Time `json:"bookingDate" gorm:"index"` // date-only, midnight
	RentalDays  int       `json:"rentalDays"`
	State       string    `json:"state" gorm:"default:PENDING;index"`
	GuestID     *uint     `json:"guestId"`
	Guest       *Guest    `json:"guest" gorm:"foreignKey:GuestID"`

	// Walk-in bookings carry contact details instead of an account
	GuestName  string `json:"guestName,omitempty"`
	GuestEmail string `json:"guestEmail,omitempty"`
	GuestPhone string `json:"guestPhone,omitempty"`

	// Set when a rental form is opened at check-in
	RentalFormID *uint       `json:"rentalFormId"`
	RentalForm   *RentalForm `json:"rentalForm" gorm:"foreignKey:RentalFormID"`

	Price      int       `json:"price"` // per-night price at booking time
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Live reports whether the booking counts for occupancy and conflicts
func (b *Booking) Live() bool {
	return b.State == constants.BookingStatePending || b.State == constants.BookingStateCommited
}

// Start returns the booking start normalized to midnight
func (b *Booking) Start() time.Time {
	d := b.BookingDate
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// End returns the exclusive end of the occupancy interval
func (b *Booking) End() time.Time {
	return b.Start().AddDate(0, 0, b.RentalDays)
}
