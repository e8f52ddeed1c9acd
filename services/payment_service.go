package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"stayhub/config"
	"stayhub/dto"
	apperrors "stayhub/errors"
)

// BuildPaymentQR returns a bank-transfer QR image URL for an unpaid rental
// form. Bank and account come from the environment so deployments can point
// at their own receiving account.
func BuildPaymentQR(rentalFormID uint) (*dto.PaymentQRResponse, error) {
	form, err := GetRentalFormByID(rentalFormID)
	if err != nil {
		return nil, err
	}
	if form.Paid() {
		return nil, apperrors.ErrAlreadyPaid
	}

	bank := config.EnvOrDefault("PAYMENT_QR_BANK", "SACOMBANK")
	account := config.GetEnv("PAYMENT_QR_ACCOUNT")

	return &dto.PaymentQRResponse{
		RentalFormID: form.ID,
		Amount:       form.TotalAmount,
		QRCodeURL:    buildQRCodeURL(bank, account, int(form.TotalAmount), fmt.Sprintf("Rental form %d", form.ID)),
	}, nil
}

func buildQRCodeURL(bank, account string, amount int, info string) string {
	return fmt.Sprintf(
		"https://img.vietqr.io/image/%s-%s-compact.jpg?amount=%d&addInfo=%s",
		bank, account, amount, url.QueryEscape(info),
	)
}

// ConfirmPayment marks a rental form paid through Checkout and returns the
// updated form
func ConfirmPayment(ctx context.Context, rentalFormID uint, paymentType int) (*dto.RentalResponse, error) {
	form, err := Checkout(ctx, rentalFormID, paymentType, time.Now())
	if err != nil {
		return nil, err
	}

	roomName := ""
	var room struct{ Name string }
	if err := config.DB.Table("rooms").Select("name").Where("id = ?", form.RoomID).Scan(&room).Error; err == nil {
		roomName = room.Name
	}

	resp := BuildRentalResponse(form, roomName)
	return &resp, nil
}
