package dto

import "time"

type CreateBookingRequest struct {
	RoomID       uint   `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`  // 2006-01-02
	CheckOutDate string `json:"checkOutDate"` // 2006-01-02
	GuestID      uint   `json:"guestId,omitempty"`
	GuestName    string `json:"guestName,omitempty"`
	GuestEmail   string `json:"guestEmail,omitempty"`
	GuestPhone   string `json:"guestPhone,omitempty"`
}

type BookingStateRequest struct {
	ID    uint   `json:"id"`
	State string `json:"state"`
}

// ActorResponse carries the person a booking belongs to, account or walk-in
type ActorResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type BookingRoomResponse struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	RoomTypeName  string `json:"roomTypeName"`
	RoomTypePrice int    `json:"roomTypePrice"`
	FloorName     string `json:"floorName"`
}

type BookingResponse struct {
	ID           uint                `json:"id"`
	Guest        ActorResponse       `json:"guest"`
	Room         BookingRoomResponse `json:"room"`
	BookingDate  string              `json:"bookingDate"`
	RentalDays   int                 `json:"rentalDays"`
	State        string              `json:"state"`
	Price        int                 `json:"price"`
	TotalPrice   float64             `json:"totalPrice"`
	CheckedOut   bool                `json:"checkedOut"`
	RentalFormID *uint               `json:"rentalFormId,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}
