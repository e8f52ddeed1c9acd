package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an application error class
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeGuestNotFound   ErrorCode = "GUEST_NOT_FOUND"
	ErrCodeGuestExists     ErrorCode = "GUEST_EXISTS"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone    ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidCode     ErrorCode = "INVALID_CODE"
	ErrCodeExpiredCode     ErrorCode = "EXPIRED_CODE"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"

	// Booking errors
	ErrCodeDateInPast      ErrorCode = "DATE_IN_PAST"
	ErrCodeInvalidWindow   ErrorCode = "INVALID_WINDOW"
	ErrCodeBookingConflict ErrorCode = "BOOKING_CONFLICT"
	ErrCodeInvalidState    ErrorCode = "INVALID_STATE"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Business errors
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"
)

// AppError carries an error code alongside a message and optional cause
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError extracts an AppError from err, or nil
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

var (
	// Booking window errors; expected user-input outcomes, returned as values
	ErrDateInPast      = errors.New("check-in or check-out date is in the past")
	ErrInvalidWindow   = errors.New("check-out must be after check-in")
	ErrBookingConflict = errors.New("requested window conflicts with an existing booking")

	// Booking lifecycle errors
	ErrBookingNotFound    = errors.New("booking not found")
	ErrBookingCancelled   = errors.New("booking already cancelled")
	ErrBookingExpired     = errors.New("booking already expired")
	ErrCancelWindowClosed = errors.New("cancellation window has closed")

	// Room errors
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomNotReady = errors.New("room is not ready to serve")

	// Rental errors
	ErrRentalNotFound = errors.New("rental form not found")
	ErrAlreadyPaid    = errors.New("rental form already paid")
	ErrAlreadyRented  = errors.New("booking already has a rental form")

	// Guest errors
	ErrGuestNotFound      = errors.New("guest not found")
	ErrGuestAlreadyExists = errors.New("guest already exists")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrUnauthorized       = errors.New("unauthorized")
)
