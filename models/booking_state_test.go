package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stayhub/constants"
)

func TestBookingStateTransitions(t *testing.T) {
	t.Run("pending confirms", func(t *testing.T) {
		b := Booking{State: constants.BookingStatePending}
		assert.NoError(t, GetBookingState(b.State).Confirm(&b))
		assert.Equal(t, constants.BookingStateCommited, b.State)
	})

	t.Run("pending cancels", func(t *testing.T) {
		b := Booking{State: constants.BookingStatePending}
		assert.NoError(t, GetBookingState(b.State).Cancel(&b))
		assert.Equal(t, constants.BookingStateCancelled, b.State)
	})

	t.Run("pending expires", func(t *testing.T) {
		b := Booking{State: constants.BookingStatePending}
		assert.NoError(t, GetBookingState(b.State).Expire(&b))
		assert.Equal(t, constants.BookingStateExpired, b.State)
	})

	t.Run("commited cancels but never expires", func(t *testing.T) {
		b := Booking{State: constants.BookingStateCommited}
		assert.Error(t, GetBookingState(b.State).Expire(&b))
		assert.Error(t, GetBookingState(b.State).Confirm(&b))
		assert.NoError(t, GetBookingState(b.State).Cancel(&b))
		assert.Equal(t, constants.BookingStateCancelled, b.State)
	})

	t.Run("terminal states reject everything", func(t *testing.T) {
		for _, state := range []string{constants.BookingStateCancelled, constants.BookingStateExpired} {
			b := Booking{State: state}
			s := GetBookingState(b.State)
			assert.Error(t, s.Confirm(&b))
			assert.Error(t, s.Cancel(&b))
			assert.Error(t, s.Expire(&b))
			assert.Equal(t, state, b.State)
		}
	})
}

func TestBookingInterval(t *testing.T) {
	b := Booking{
		BookingDate: time.Date(2026, 9, 10, 15, 30, 0, 0, time.UTC),
		RentalDays:  3,
	}

	assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), b.Start())
	assert.Equal(t, time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC), b.End())
}

func TestRoomValidateState(t *testing.T) {
	r := Room{State: constants.RoomStateReadyToServe}
	assert.NoError(t, r.ValidateState())
	assert.True(t, r.ReadyToServe())

	r.State = "UNKNOWN"
	assert.Error(t, r.ValidateState())

	r.State = constants.RoomStateMaintenance
	assert.NoError(t, r.ValidateState())
	assert.False(t, r.ReadyToServe())
}

func TestRentalFormPaid(t *testing.T) {
	f := RentalForm{}
	assert.False(t, f.Paid())

	now := time.Now()
	f.IsPaidAt = &now
	assert.True(t, f.Paid())
}
