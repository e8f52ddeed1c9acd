package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	apperrors "stayhub/errors"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"
)

type reviewRequest struct {
	RoomID  uint   `json:"roomId"`
	Comment string `json:"comment"`
	Star    int    `json:"star"`
}

// CreateReview lets a guest rate a room they have stayed in. The room's star
// rating is recomputed from persisted reviews on the next snapshot rebuild.
func CreateReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	guestID := c.GetUint("guestID")

	review := models.Review{
		RoomID:  req.RoomID,
		GuestID: guestID,
		Comment: req.Comment,
		Star:    req.Star,
	}
	if err := validator.ValidateReview(&review); err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	// only guests who completed a stay in the room may review it
	var stays int64
	err := config.DB.Model(&models.Booking{}).
		Where("room_id = ? AND guest_id = ? AND state = ? AND rental_form_id IS NOT NULL",
			req.RoomID, guestID, constants.BookingStateCommited).
		Count(&stays).Error
	if err != nil {
		response.ServerError(c)
		return
	}
	if stays == 0 {
		response.Forbidden(c)
		return
	}

	if err := config.DB.Create(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateRoomSnapshot(c.Request.Context())
	response.Success(c, review)
}

// GetRoomReviews pages through a room's reviews, newest first
func GetRoomReviews(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Query("roomId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "roomId must be a number")
		return
	}

	var page dto.PaginateInput
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, "Invalid pagination params")
		return
	}
	page.Normalize()

	query := config.DB.Model(&models.Review{}).Where("room_id = ?", roomID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var reviews []models.Review
	err = query.Preload("Guest").
		Order("created_at DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&reviews).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, reviews, page.Page, page.Limit, int(total))
}
