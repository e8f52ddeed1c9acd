package controllers

import (
	"strconv"
	"time"

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

const apiDateLayout = "2006-01-02"

// SearchRooms lists rooms a guest can book, filtered and sorted by query
// params. The full result is computed from the cached snapshot and paged in
// memory.
func SearchRooms(c *gin.Context) {
	opts := dto.SearchOptions{
		Today:      time.Now(),
		PriceRange: c.Query("priceRange"),
		SortOrder:  c.Query("sort"),
	}

	if v := c.Query("checkIn"); v != "" {
		t, err := time.Parse(apiDateLayout, v)
		if err != nil {
			response.BadRequest(c, "checkIn must be YYYY-MM-DD")
			return
		}
		opts.CheckIn = &t
	}
	if v := c.Query("checkOut"); v != "" {
		t, err := time.Parse(apiDateLayout, v)
		if err != nil {
			response.BadRequest(c, "checkOut must be YYYY-MM-DD")
			return
		}
		opts.CheckOut = &t
	}
	if (opts.CheckIn == nil) != (opts.CheckOut == nil) {
		response.BadRequest(c, "checkIn and checkOut must be provided together")
		return
	}

	if v := c.Query("roomTypeId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			response.BadRequest(c, "roomTypeId must be a number")
			return
		}
		typeID := uint(id)
		opts.RoomTypeID = &typeID
	}
	if v := c.Query("starRating"); v != "" {
		star, err := strconv.Atoi(v)
		if err != nil || star < 1 || star > 5 {
			response.BadRequest(c, "starRating must be between 1 and 5")
			return
		}
		opts.StarRating = &star
	}

	var page dto.PaginateInput
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, "Invalid pagination params")
		return
	}
	page.Normalize()

	rooms, bookings, err := services.FetchRoomSnapshot(c.Request.Context())
	if err != nil {
		response.ServerError(c)
		return
	}

	results := services.ListAvailableRooms(rooms, bookings, opts)

	total := len(results)
	start := page.Offset()
	if start > len(results) {
		start = len(results)
	}
	end := start + page.Limit
	if end > len(results) {
		end = len(results)
	}

	response.SuccessWithPagination(c, results[start:end], page.Page, page.Limit, total)
}

// GetRoomDetail returns a room with its type, floor and reviews
func GetRoomDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "id must be a number")
		return
	}

	var room models.Room
	if err := config.DB.Preload("RoomType").Preload("Floor").First(&room, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	var reviews []models.Review
	if err := config.DB.Preload("Guest").Where("room_id = ?", room.ID).
		Order("created_at DESC").Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"room":    room,
		"reviews": reviews,
	})
}

// CreateRoom adds a room to the catalog
func CreateRoom(c *gin.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	room := models.Room{
		Name:       req.Name,
		Note:       req.Note,
		State:      req.State,
		RoomTypeID: req.RoomTypeID,
		FloorID:    req.FloorID,
		Avatar:     req.Avatar,
		Img:        req.Img,
	}
	if room.State == "" {
		room.State = constants.RoomStateReadyToServe
	}
	if err := validator.ValidateRoom(&room); err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateRoomSnapshot(c.Request.Context())
	response.Success(c, room)
}

// UpdateRoom edits a room's catalog fields
func UpdateRoom(c *gin.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if req.ID == 0 {
		response.BadRequest(c, "id is required")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	room.Name = req.Name
	room.Note = req.Note
	room.RoomTypeID = req.RoomTypeID
	room.FloorID = req.FloorID
	if req.State != "" {
		room.State = req.State
	}
	if req.Avatar != "" {
		room.Avatar = req.Avatar
	}
	if len(req.Img) > 0 {
		room.Img = req.Img
	}
	if err := validator.ValidateRoom(&room); err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateRoomSnapshot(c.Request.Context())
	response.Success(c, room)
}

// ChangeRoomState flips a room between housekeeping states
func ChangeRoomState(c *gin.Context) {
	var req dto.RoomStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	room.State = req.State
	if err := room.ValidateState(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateRoomSnapshot(c.Request.Context())
	response.Success(c, room)
}

// GetRoomCalendar returns a month of per-day occupancy for one room. Staff
// see the guest contact on occupied days.
func GetRoomCalendar(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Query("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "id must be a number")
		return
	}
	month := c.Query("month")
	parsedMonth, err := time.Parse("2006-01", month)
	if err != nil {
		response.BadRequest(c, "month must be YYYY-MM")
		return
	}

	firstDay := time.Date(parsedMonth.Year(), parsedMonth.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := firstDay.AddDate(0, 1, 0)

	var bookings []models.Booking
	err = config.DB.Preload("Guest").
		Where("room_id = ? AND state IN ?", roomID,
			[]string{constants.BookingStatePending, constants.BookingStateCommited}).
		Find(&bookings).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	staff := c.GetInt("guestRole") != constants.RoleGuest

	var days []dto.RoomCalendarDay
	for day := firstDay; day.Before(nextMonth); day = day.AddDate(0, 0, 1) {
		entry := dto.RoomCalendarDay{Date: day.Format(apiDateLayout)}
		for i := range bookings {
			b := &bookings[i]
			if !day.Before(b.Start()) && day.Before(b.End()) {
				entry.Occupied = true
				if staff {
					entry.Guest = calendarGuest(b)
				}
				break
			}
		}
		days = append(days, entry)
	}

	response.Success(c, days)
}

func calendarGuest(b *models.Booking) *dto.GuestContact {
	if b.Guest != nil {
		return &dto.GuestContact{Name: b.Guest.Name, Phone: b.Guest.PhoneNumber}
	}
	if b.GuestName != "" {
		return &dto.GuestContact{Name: b.GuestName, Phone: b.GuestPhone}
	}
	return nil
}

// ListRoomTypes returns the room type catalog
func ListRoomTypes(c *gin.Context) {
	var types []models.RoomType
	if err := config.DB.Find(&types).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, types)
}

// CreateRoomType adds a room type to the catalog
func CreateRoomType(c *gin.Context) {
	var roomType models.RoomType
	if err := c.ShouldBindJSON(&roomType); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if roomType.Name == "" || roomType.Price <= 0 {
		response.BadRequest(c, "name and a positive price are required")
		return
	}

	if err := config.DB.Create(&roomType).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateRoomSnapshot(c.Request.Context())
	response.Success(c, roomType)
}

// ListFloors returns the floor catalog
func ListFloors(c *gin.Context) {
	var floors []models.Floor
	if err := config.DB.Find(&floors).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, floors)
}

// CreateFloor adds a floor to the catalog
func CreateFloor(c *gin.Context) {
	var floor models.Floor
	if err := c.ShouldBindJSON(&floor); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if floor.Name == "" {
		response.BadRequest(c, "name is required")
		return
	}

	if err := config.DB.Create(&floor).Error; err != nil {
		response.ServerError(c)
		return
	}

	services.InvalidateRoomSnapshot(c.Request.Context())
	response.Success(c, floor)
}
