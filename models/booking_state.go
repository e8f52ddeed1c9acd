package models

import (
	"errors"

	"stayhub/constants"
)

// BookingState defines the transitions allowed from each booking state
type BookingState interface {
	Confirm(booking *Booking) error
	Cancel(booking *Booking) error
	Expire(booking *Booking) error
}

// PendingState awaits confirmation
type PendingState struct{}

func (s *PendingState) Confirm(booking *Booking) error {
	booking.State = constants.BookingStateCommited
	return nil
}

func (s *PendingState) Cancel(booking *Booking) error {
	booking.State = constants.BookingStateCancelled
	return nil
}

func (s *PendingState) Expire(booking *Booking) error {
	booking.State = constants.BookingStateExpired
	return nil
}

// CommitedState is a confirmed reservation
type CommitedState struct{}

func (s *CommitedState) Confirm(booking *Booking) error {
	return errors.New("booking already confirmed")
}

func (s *CommitedState) Cancel(booking *Booking) error {
	booking.State = constants.BookingStateCancelled
	return nil
}

func (s *CommitedState) Expire(booking *Booking) error {
	return errors.New("cannot expire confirmed booking")
}

// CancelledState is terminal
type CancelledState struct{}

func (s *CancelledState) Confirm(booking *Booking) error {
	return errors.New("cannot confirm cancelled booking")
}

func (s *CancelledState) Cancel(booking *Booking) error {
	return errors.New("booking already cancelled")
}

func (s *CancelledState) Expire(booking *Booking) error {
	return errors.New("cannot expire cancelled booking")
}

// ExpiredState is terminal
type ExpiredState struct{}

func (s *ExpiredState) Confirm(booking *Booking) error {
	return errors.New("cannot confirm expired booking")
}

func (s *ExpiredState) Cancel(booking *Booking) error {
	return errors.New("cannot cancel expired booking")
}

func (s *ExpiredState) Expire(booking *Booking) error {
	return errors.New("booking already expired")
}

// GetBookingState returns the state object for the given booking state
func GetBookingState(state string) BookingState {
	switch state {
	case constants.BookingStatePending:
		return &PendingState{}
	case constants.BookingStateCommited:
		return &CommitedState{}
	case constants.BookingStateCancelled:
		return &CancelledState{}
	case constants.BookingStateExpired:
		return &ExpiredState{}
	default:
		return &PendingState{}
	}
}
