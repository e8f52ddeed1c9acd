package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"stayhub/constants"
	"stayhub/dto"
	apperrors "stayhub/errors"
	"stayhub/response"
	"stayhub/services"
)

// GetPaymentQR returns a bank-transfer QR image for an unpaid rental form
func GetPaymentQR(c *gin.Context) {
	var req dto.PaymentQRRequest
	if err := c.ShouldBindQuery(&req); err != nil || req.RentalFormID == 0 {
		response.BadRequest(c, "rentalFormId is required")
		return
	}

	qr, err := services.BuildPaymentQR(req.RentalFormID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrRentalNotFound):
			response.NotFound(c)
		case errors.Is(err, apperrors.ErrAlreadyPaid):
			response.Conflict(c, "Rental form already paid")
		default:
			response.ServerError(c)
		}
		return
	}
	response.Success(c, qr)
}

// ConfirmPayment records the checkout payment on a rental form
func ConfirmPayment(c *gin.Context) {
	var req dto.PaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	switch req.PaymentType {
	case constants.PaymentTypeCash, constants.PaymentTypeBankTransfer, constants.PaymentTypeQR:
	default:
		response.BadRequest(c, "paymentType is not valid")
		return
	}

	result, err := services.ConfirmPayment(c.Request.Context(), req.RentalFormID, req.PaymentType)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrRentalNotFound):
			response.NotFound(c)
		case errors.Is(err, apperrors.ErrAlreadyPaid):
			response.Conflict(c, "Rental form already paid")
		default:
			response.ServerError(c)
		}
		return
	}
	response.Success(c, result)
}
