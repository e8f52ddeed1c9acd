package validator

import (
	"regexp"
	"time"

	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
)

// ValidateGuest checks a new guest account
func ValidateGuest(guest *models.Guest) error {
	if guest.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "email is required", nil)
	}
	if !isValidEmail(guest.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "email is not valid", nil)
	}

	if guest.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "password is required", nil)
	}
	if len(guest.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "password must be at least 6 characters", nil)
	}

	if guest.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "phone number is required", nil)
	}
	if !isValidPhone(guest.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "phone number is not valid", nil)
	}

	if guest.Role < 0 || guest.Role > 2 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "role is not valid", nil)
	}

	return nil
}

// ValidateRoom checks a room create or update payload
func ValidateRoom(room *models.Room) error {
	if room.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "room name is required", nil)
	}
	if room.RoomTypeID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "room type is required", nil)
	}
	if room.FloorID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "floor is required", nil)
	}
	if err := room.ValidateState(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}
	return nil
}

// ValidateBookingRequest checks dates and contact details before the booking
// window itself is validated
func ValidateBookingRequest(req *dto.CreateBookingRequest) error {
	if req.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "roomId is required", nil)
	}
	if req.CheckInDate == "" || req.CheckOutDate == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "checkInDate and checkOutDate are required", nil)
	}

	if _, err := time.Parse("2006-01-02", req.CheckInDate); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "checkInDate must be YYYY-MM-DD", err)
	}
	if _, err := time.Parse("2006-01-02", req.CheckOutDate); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "checkOutDate must be YYYY-MM-DD", err)
	}

	// walk-in bookings need at least a name and a way to reach the guest
	if req.GuestID == 0 {
		if req.GuestName == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "guestName is required for walk-in bookings", nil)
		}
		if req.GuestEmail == "" && req.GuestPhone == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "guestEmail or guestPhone is required", nil)
		}
	}
	if req.GuestEmail != "" && !isValidEmail(req.GuestEmail) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "guestEmail is not valid", nil)
	}
	if req.GuestPhone != "" && !isValidPhone(req.GuestPhone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "guestPhone is not valid", nil)
	}

	return nil
}

// ValidateReview checks a review payload
func ValidateReview(review *models.Review) error {
	if review.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "roomId is required", nil)
	}
	if review.Star < 1 || review.Star > 5 {
		return errors.NewAppError(errors.ErrCodeValidation, "star must be between 1 and 5", nil)
	}
	return nil
}

func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}
