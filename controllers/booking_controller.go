package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"stayhub/constants"
	"stayhub/dto"
	apperrors "stayhub/errors"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"
)

// CreateBooking places a reservation. Signed-in guests book for themselves;
// staff can place walk-in bookings with contact details.
func CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if guestID := c.GetUint("guestID"); guestID != 0 && c.GetInt("guestRole") == constants.RoleGuest {
		req.GuestID = guestID
	}

	if err := validator.ValidateBookingRequest(&req); err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	booking, err := services.CreateBooking(c.Request.Context(), req, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDateInPast):
			response.BadRequest(c, "Check-in date is in the past")
		case errors.Is(err, apperrors.ErrInvalidWindow):
			response.BadRequest(c, "Check-out must be after check-in")
		case errors.Is(err, apperrors.ErrBookingConflict):
			response.Conflict(c, "Room is already booked for those dates")
		case errors.Is(err, apperrors.ErrRoomNotFound):
			response.NotFound(c)
		case errors.Is(err, apperrors.ErrRoomNotReady):
			response.Conflict(c, "Room is not ready to serve")
		default:
			if appErr := apperrors.GetAppError(err); appErr != nil {
				response.BadRequest(c, appErr.Message)
				return
			}
			response.ServerError(c)
		}
		return
	}

	full, err := services.GetBookingByID(booking.ID)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, services.BuildBookingResponse(full))
}

// GetBookings pages through all bookings for staff
func GetBookings(c *gin.Context) {
	var page dto.PaginateInput
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, "Invalid pagination params")
		return
	}

	var roomID uint
	if v := c.Query("roomId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			response.BadRequest(c, "roomId must be a number")
			return
		}
		roomID = uint(id)
	}

	bookings, total, err := services.ListBookings(page, c.Query("state"), roomID)
	if err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		results = append(results, services.BuildBookingResponse(&bookings[i]))
	}

	page.Normalize()
	response.SuccessWithPagination(c, results, page.Page, page.Limit, int(total))
}

// GetBookingDetail returns one booking. Guests may only read their own.
func GetBookingDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "id must be a number")
		return
	}

	booking, err := services.GetBookingByID(uint(id))
	if err != nil {
		response.NotFound(c)
		return
	}

	if c.GetInt("guestRole") == constants.RoleGuest {
		guestID := c.GetUint("guestID")
		if booking.GuestID == nil || *booking.GuestID != guestID {
			response.Forbidden(c)
			return
		}
	}

	response.Success(c, services.BuildBookingResponse(booking))
}

// GetBookingHistory pages through the signed-in guest's bookings
func GetBookingHistory(c *gin.Context) {
	var page dto.PaginateInput
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, "Invalid pagination params")
		return
	}

	guestID := c.GetUint("guestID")
	bookings, total, err := services.GuestBookingHistory(guestID, page)
	if err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		results = append(results, services.BuildBookingResponse(&bookings[i]))
	}

	page.Normalize()
	response.SuccessWithPagination(c, results, page.Page, page.Limit, int(total))
}

// ConfirmBooking moves a booking to COMMITED, staff only
func ConfirmBooking(c *gin.Context) {
	var req dto.BookingStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	booking, err := services.ConfirmBooking(c.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrBookingNotFound) {
			response.NotFound(c)
			return
		}
		if appErr := apperrors.GetAppError(err); appErr != nil {
			response.Conflict(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}
	response.Success(c, services.BuildBookingResponse(booking))
}

// CancelBooking cancels a booking for the signed-in actor
func CancelBooking(c *gin.Context) {
	var req dto.BookingStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	booking, err := services.CancelBooking(
		c.Request.Context(), req.ID, c.GetUint("guestID"), c.GetInt("guestRole"), time.Now())
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrBookingNotFound):
			response.NotFound(c)
		case errors.Is(err, apperrors.ErrUnauthorized):
			response.Forbidden(c)
		case errors.Is(err, apperrors.ErrCancelWindowClosed):
			response.Conflict(c, "Cancellation window has closed")
		default:
			if appErr := apperrors.GetAppError(err); appErr != nil {
				response.Conflict(c, appErr.Message)
				return
			}
			response.ServerError(c)
		}
		return
	}
	response.Success(c, services.BuildBookingResponse(booking))
}
