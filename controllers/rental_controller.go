package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"stayhub/config"
	"stayhub/dto"
	apperrors "stayhub/errors"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
)

// CreateRental checks a confirmed booking in and opens its rental form
func CreateRental(c *gin.Context) {
	var req dto.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	form, err := services.CreateRentalForm(c.Request.Context(), req.BookingID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrBookingNotFound):
			response.NotFound(c)
		case errors.Is(err, apperrors.ErrAlreadyRented):
			response.Conflict(c, "Booking already checked in")
		default:
			if appErr := apperrors.GetAppError(err); appErr != nil {
				response.Conflict(c, appErr.Message)
				return
			}
			response.ServerError(c)
		}
		return
	}

	response.Success(c, services.BuildRentalResponse(form, roomName(form.RoomID)))
}

// GetRentals pages through rental forms; unpaid=true narrows to open stays
func GetRentals(c *gin.Context) {
	var page dto.PaginateInput
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, "Invalid pagination params")
		return
	}
	unpaidOnly := c.Query("unpaid") == "true"

	forms, total, err := services.ListRentalForms(page, unpaidOnly)
	if err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.RentalResponse, 0, len(forms))
	for i := range forms {
		results = append(results, services.BuildRentalResponse(&forms[i], roomName(forms[i].RoomID)))
	}

	page.Normalize()
	response.SuccessWithPagination(c, results, page.Page, page.Limit, int(total))
}

// GetRentalDetail returns one rental form
func GetRentalDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "id must be a number")
		return
	}

	form, err := services.GetRentalFormByID(uint(id))
	if err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, services.BuildRentalResponse(form, roomName(form.RoomID)))
}

func roomName(roomID uint) string {
	var room models.Room
	if err := config.DB.Select("name").First(&room, roomID).Error; err != nil {
		return ""
	}
	return room.Name
}
