package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	apperrors "stayhub/errors"
	"stayhub/models"
)

const apiDateLayout = "2006-01-02"

// CreateBooking validates the requested window and creates a PENDING booking.
// The room's live bookings are re-read under a row lock inside the
// transaction, so two overlapping requests cannot both commit.
func CreateBooking(ctx context.Context, req dto.CreateBookingRequest, today time.Time) (*models.Booking, error) {
	checkIn, err := time.Parse(apiDateLayout, req.CheckInDate)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "checkInDate must be YYYY-MM-DD", err)
	}
	checkOut, err := time.Parse(apiDateLayout, req.CheckOutDate)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "checkOutDate must be YYYY-MM-DD", err)
	}

	var booking *models.Booking
	err = config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Preload("RoomType").First(&room, req.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRoomNotFound
			}
			return err
		}
		// room state may have changed since the guest searched
		if !room.ReadyToServe() {
			return apperrors.ErrRoomNotReady
		}

		var live []models.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("room_id = ? AND state IN ?", req.RoomID,
				[]string{constants.BookingStatePending, constants.BookingStateCommited}).
			Find(&live).Error; err != nil {
			return err
		}

		if err := ValidateBookingWindow(req.RoomID, checkIn, checkOut, live, today); err != nil {
			return err
		}

		days := ComputeRentalDays(checkIn, checkOut)
		b := models.Booking{
			RoomID:      req.RoomID,
			BookingDate: dateOnly(checkIn),
			RentalDays:  days,
			State:       constants.BookingStatePending,
			GuestName:   req.GuestName,
			GuestEmail:  req.GuestEmail,
			GuestPhone:  req.GuestPhone,
			Price:       room.RoomType.Price,
			TotalPrice:  float64(room.RoomType.Price * days),
		}
		if req.GuestID != 0 {
			id := req.GuestID
			b.GuestID = &id
		}

		if err := tx.Create(&b).Error; err != nil {
			return err
		}
		booking = &b
		return nil
	})
	if err != nil {
		return nil, err
	}

	InvalidateRoomSnapshot(ctx)

	if email := bookingEmail(booking); email != "" {
		go func() {
			if err := SendBookingEmail(email, booking.ID, booking.TotalPrice,
				booking.Start().Format(apiDateLayout), booking.End().Format(apiDateLayout)); err != nil {
				svcLog.Error("booking confirmation mail: %v", err)
			}
		}()
	}

	return booking, nil
}

func bookingEmail(b *models.Booking) string {
	if b.GuestEmail != "" {
		return b.GuestEmail
	}
	if b.GuestID != nil {
		var guest models.Guest
		if err := config.DB.First(&guest, *b.GuestID).Error; err == nil {
			return guest.Email
		}
	}
	return ""
}

func GetBookingByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := config.DB.
		Preload("Room").Preload("Room.RoomType").Preload("Room.Floor").
		Preload("Guest").Preload("RentalForm").
		First(&booking, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListBookings pages through bookings, optionally filtered by state or room
func ListBookings(page dto.PaginateInput, state string, roomID uint) ([]models.Booking, int64, error) {
	page.Normalize()

	query := config.DB.Model(&models.Booking{})
	if state != "" {
		query = query.Where("state = ?", state)
	}
	if roomID != 0 {
		query = query.Where("room_id = ?", roomID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []models.Booking
	err := query.
		Preload("Room").Preload("Room.RoomType").Preload("Room.Floor").
		Preload("Guest").Preload("RentalForm").
		Order("created_at DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

// GuestBookingHistory returns a guest's own bookings, newest first
func GuestBookingHistory(guestID uint, page dto.PaginateInput) ([]models.Booking, int64, error) {
	page.Normalize()

	query := config.DB.Model(&models.Booking{}).Where("guest_id = ?", guestID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []models.Booking
	err := query.
		Preload("Room").Preload("Room.RoomType").Preload("Room.Floor").
		Preload("RentalForm").
		Order("created_at DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

// ConfirmBooking moves a PENDING booking to COMMITED
func ConfirmBooking(ctx context.Context, bookingID uint) (*models.Booking, error) {
	booking, err := GetBookingByID(bookingID)
	if err != nil {
		return nil, err
	}

	state := models.GetBookingState(booking.State)
	if err := state.Confirm(booking); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidState, err.Error(), nil)
	}

	if err := config.DB.Save(booking).Error; err != nil {
		return nil, err
	}
	InvalidateRoomSnapshot(ctx)
	return booking, nil
}

// CancelBooking cancels a booking on behalf of the actor. Guests may only
// cancel their own bookings and only while the cancel window is open; staff
// may cancel any booking at any time.
func CancelBooking(ctx context.Context, bookingID, actorID uint, role int, now time.Time) (*models.Booking, error) {
	booking, err := GetBookingByID(bookingID)
	if err != nil {
		return nil, err
	}

	if role == constants.RoleGuest {
		if booking.GuestID == nil || *booking.GuestID != actorID {
			return nil, apperrors.ErrUnauthorized
		}
		if !CanCancel(booking, now) {
			return nil, apperrors.ErrCancelWindowClosed
		}
	}

	state := models.GetBookingState(booking.State)
	if err := state.Cancel(booking); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidState, err.Error(), nil)
	}

	if err := config.DB.Save(booking).Error; err != nil {
		return nil, err
	}
	InvalidateRoomSnapshot(ctx)
	return booking, nil
}

// ExpireStalePending closes PENDING bookings that were never confirmed. A
// booking expires once it has sat unconfirmed past the expiry window or its
// start date has already passed. Run from the cron scheduler.
func ExpireStalePending(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.Add(-time.Duration(constants.PendingExpiryHours) * time.Hour)

	var stale []models.Booking
	err := config.DB.
		Where("state = ? AND (created_at < ? OR booking_date < ?)",
			constants.BookingStatePending, cutoff, dateOnly(now)).
		Find(&stale).Error
	if err != nil {
		return 0, err
	}

	expired := 0
	for i := range stale {
		b := &stale[i]
		if err := models.GetBookingState(b.State).Expire(b); err != nil {
			continue
		}
		if err := config.DB.Save(b).Error; err != nil {
			return expired, err
		}
		expired++
	}

	if expired > 0 {
		InvalidateRoomSnapshot(ctx)
	}
	return expired, nil
}

// BookingExpirer adapts the expiry run for the cron scheduler
type BookingExpirer struct{}

func (BookingExpirer) ExpireStalePending(ctx context.Context, now time.Time) (int, error) {
	return ExpireStalePending(ctx, now)
}

// BuildBookingResponse flattens a booking with its preloads into the API shape
func BuildBookingResponse(b *models.Booking) dto.BookingResponse {
	resp := dto.BookingResponse{
		ID:           b.ID,
		BookingDate:  b.Start().Format(apiDateLayout),
		RentalDays:   b.RentalDays,
		State:        b.State,
		Price:        b.Price,
		TotalPrice:   b.TotalPrice,
		RentalFormID: b.RentalFormID,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
		Room: dto.BookingRoomResponse{
			ID:            b.Room.ID,
			Name:          b.Room.Name,
			RoomTypeName:  b.Room.RoomType.Name,
			RoomTypePrice: b.Room.RoomType.Price,
			FloorName:     b.Room.Floor.Name,
		},
	}

	if b.Guest != nil {
		resp.Guest = dto.ActorResponse{
			Name:        b.Guest.Name,
			Email:       b.Guest.Email,
			PhoneNumber: b.Guest.PhoneNumber,
		}
	} else {
		resp.Guest = dto.ActorResponse{
			Name:        b.GuestName,
			Email:       b.GuestEmail,
			PhoneNumber: b.GuestPhone,
		}
	}

	if b.RentalForm != nil {
		resp.CheckedOut = b.RentalForm.Paid()
	}
	return resp
}
