package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	apperrors "stayhub/errors"
	"stayhub/models"
)

// CreateRentalForm opens the operational record at check-in. The booking must
// be confirmed and not already checked in; the room flips to OCCUPIED and the
// booking is linked to the form in the same transaction.
func CreateRentalForm(ctx context.Context, bookingID uint) (*models.RentalForm, error) {
	var form *models.RentalForm
	err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrBookingNotFound
			}
			return err
		}

		if booking.State != constants.BookingStateCommited {
			return apperrors.NewAppError(apperrors.ErrCodeInvalidState,
				"only a confirmed booking can check in", nil)
		}
		if booking.RentalFormID != nil {
			return apperrors.ErrAlreadyRented
		}

		f := models.RentalForm{
			RoomID:             booking.RoomID,
			RentalDate:         booking.Start(),
			NumberOfRentalDays: booking.RentalDays,
			TotalAmount:        booking.TotalPrice,
		}
		if err := tx.Create(&f).Error; err != nil {
			return err
		}

		booking.RentalFormID = &f.ID
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Room{}).
			Where("id = ?", booking.RoomID).
			Update("state", constants.RoomStateOccupied).Error; err != nil {
			return err
		}

		form = &f
		return nil
	})
	if err != nil {
		return nil, err
	}

	InvalidateRoomSnapshot(ctx)
	return form, nil
}

func GetRentalFormByID(id uint) (*models.RentalForm, error) {
	var form models.RentalForm
	err := config.DB.First(&form, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrRentalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &form, nil
}

// Checkout records payment on a rental form and releases the room for
// cleaning. Paying twice is rejected.
func Checkout(ctx context.Context, rentalFormID uint, paymentType int, now time.Time) (*models.RentalForm, error) {
	var form *models.RentalForm
	err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var f models.RentalForm
		if err := tx.First(&f, rentalFormID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRentalNotFound
			}
			return err
		}
		if f.Paid() {
			return apperrors.ErrAlreadyPaid
		}

		f.IsPaidAt = &now
		f.PaymentType = &paymentType
		if err := tx.Save(&f).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Room{}).
			Where("id = ?", f.RoomID).
			Update("state", constants.RoomStateBeingCleaned).Error; err != nil {
			return err
		}

		form = &f
		return nil
	})
	if err != nil {
		return nil, err
	}

	InvalidateRoomSnapshot(ctx)
	return form, nil
}

// ListRentalForms pages through rental forms, optionally only unpaid ones
func ListRentalForms(page dto.PaginateInput, unpaidOnly bool) ([]models.RentalForm, int64, error) {
	page.Normalize()

	query := config.DB.Model(&models.RentalForm{})
	if unpaidOnly {
		query = query.Where("is_paid_at IS NULL")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var forms []models.RentalForm
	err := query.
		Order("created_at DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&forms).Error
	if err != nil {
		return nil, 0, err
	}
	return forms, total, nil
}

// BuildRentalResponse flattens a rental form into the API shape
func BuildRentalResponse(f *models.RentalForm, roomName string) dto.RentalResponse {
	return dto.RentalResponse{
		ID:                 f.ID,
		RoomID:             f.RoomID,
		RoomName:           roomName,
		RentalDate:         f.RentalDate.Format(apiDateLayout),
		NumberOfRentalDays: f.NumberOfRentalDays,
		TotalAmount:        f.TotalAmount,
		IsPaidAt:           f.IsPaidAt,
		Paid:               f.Paid(),
	}
}
