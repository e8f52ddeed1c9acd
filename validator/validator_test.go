package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/constants"
	"stayhub/dto"
	"stayhub/errors"
	"stayhub/models"
)

func TestValidateGuest(t *testing.T) {
	valid := models.Guest{
		Email:       "guest@example.com",
		Password:    "secret1",
		PhoneNumber: "0123456789",
		Role:        constants.RoleGuest,
	}
	assert.NoError(t, ValidateGuest(&valid))

	tests := []struct {
		name   string
		mutate func(g *models.Guest)
		code   errors.ErrorCode
	}{
		{"missing email", func(g *models.Guest) { g.Email = "" }, errors.ErrCodeRequiredField},
		{"bad email", func(g *models.Guest) { g.Email = "not-an-email" }, errors.ErrCodeInvalidEmail},
		{"short password", func(g *models.Guest) { g.Password = "abc" }, errors.ErrCodeValidation},
		{"bad phone", func(g *models.Guest) { g.PhoneNumber = "123" }, errors.ErrCodeInvalidPhone},
		{"bad role", func(g *models.Guest) { g.Role = 7 }, errors.ErrCodeInvalidRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := valid
			tt.mutate(&g)
			err := ValidateGuest(&g)
			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.code, appErr.Code)
		})
	}
}

func TestValidateRoom(t *testing.T) {
	valid := models.Room{
		Name:       "101",
		RoomTypeID: 1,
		FloorID:    1,
		State:      constants.RoomStateReadyToServe,
	}
	assert.NoError(t, ValidateRoom(&valid))

	bad := valid
	bad.State = "SOMETHING_ELSE"
	assert.Error(t, ValidateRoom(&bad))

	bad = valid
	bad.Name = ""
	assert.Error(t, ValidateRoom(&bad))
}

func TestValidateBookingRequest(t *testing.T) {
	valid := dto.CreateBookingRequest{
		RoomID:       1,
		CheckInDate:  "2026-09-10",
		CheckOutDate: "2026-09-12",
		GuestID:      7,
	}
	assert.NoError(t, ValidateBookingRequest(&valid))

	t.Run("bad date format", func(t *testing.T) {
		req := valid
		req.CheckInDate = "10/09/2026"
		err := ValidateBookingRequest(&req)
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeInvalidFormat, errors.GetAppError(err).Code)
	})

	t.Run("walk-in needs a name", func(t *testing.T) {
		req := valid
		req.GuestID = 0
		err := ValidateBookingRequest(&req)
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeRequiredField, errors.GetAppError(err).Code)
	})

	t.Run("walk-in with contact passes", func(t *testing.T) {
		req := valid
		req.GuestID = 0
		req.GuestName = "Alex"
		req.GuestPhone = "0123456789"
		assert.NoError(t, ValidateBookingRequest(&req))
	})

	t.Run("walk-in bad email", func(t *testing.T) {
		req := valid
		req.GuestID = 0
		req.GuestName = "Alex"
		req.GuestEmail = "nope"
		err := ValidateBookingRequest(&req)
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeInvalidEmail, errors.GetAppError(err).Code)
	})
}

func TestValidateReview(t *testing.T) {
	assert.NoError(t, ValidateReview(&models.Review{RoomID: 1, Star: 5}))
	assert.Error(t, ValidateReview(&models.Review{RoomID: 1, Star: 0}))
	assert.Error(t, ValidateReview(&models.Review{RoomID: 1, Star: 6}))
	assert.Error(t, ValidateReview(&models.Review{Star: 3}))
}
