package controllers

import (
	"errors"
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

// RegisterGuest creates an account and mails a verification code
func RegisterGuest(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	guest := models.Guest{
		Name:        input.Name,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Password:    input.Password,
		Role:        constants.RoleGuest,
	}
	if err := validator.ValidateGuest(&guest); err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	created, err := services.CreateGuest(guest)
	if err != nil {
		if errors.Is(err, apperrors.ErrGuestAlreadyExists) {
			response.Conflict(c, "Email or phone number already in use")
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, dto.GuestProfileResponse{
		ID:          created.ID,
		Name:        created.Name,
		Email:       created.Email,
		PhoneNumber: created.PhoneNumber,
		Role:        created.Role,
		IsVerified:  created.IsVerified,
		CreatedAt:   created.CreatedAt,
		UpdatedAt:   created.UpdatedAt,
	})
}

// Login authenticates by email or phone and returns an access token
func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	guest, err := services.GetGuestByEmail(input.Identifier)
	if err != nil {
		guest, err = services.GetGuestByPhoneNumber(input.Identifier)
	}
	if err != nil {
		response.Unauthorized(c)
		return
	}

	if !services.CheckPassword(guest.Password, input.Password) {
		response.Unauthorized(c)
		return
	}
	if guest.Status != constants.GuestStatusActive {
		response.Forbidden(c)
		return
	}

	accessToken, err := services.GenerateToken(services.GuestInfo{
		GuestId: guest.ID,
		Role:    guest.Role,
	}, 3*24*60, true)
	if err != nil {
		response.ServerError(c)
		return
	}
	services.SetTokenCookies(c, accessToken)

	response.Success(c, gin.H{
		"accessToken": accessToken,
		"guest": dto.GuestProfileResponse{
			ID:          guest.ID,
			Name:        guest.Name,
			Email:       guest.Email,
			PhoneNumber: guest.PhoneNumber,
			Role:        guest.Role,
			Avatar:      guest.Avatar,
			IsVerified:  guest.IsVerified,
			CreatedAt:   guest.CreatedAt,
			UpdatedAt:   guest.UpdatedAt,
		},
	})
}

// Logout clears the access token cookie
func Logout(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", true, false)
	response.Success(c, nil)
}

// AuthGoogle signs a guest in with a Google ID token, creating the account
// on first sight
func AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	claims, err := services.VerifyGoogleCredential(c.Request.Context(), input.Credential)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := claims["email"].(string)
	if email == "" {
		response.Unauthorized(c)
		return
	}
	name, _ := claims["name"].(string)
	picture, _ := claims["picture"].(string)

	guest, err := services.GetGuestByEmail(email)
	if err != nil {
		guest = models.Guest{
			Name:       name,
			Email:      email,
			Role:       constants.RoleGuest,
			Avatar:     picture,
			IsVerified: true,
		}
		if err := config.DB.Create(&guest).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	accessToken, err := services.GenerateToken(services.GuestInfo{
		GuestId: guest.ID,
		Role:    guest.Role,
	}, 3*24*60, true)
	if err != nil {
		response.ServerError(c)
		return
	}
	services.SetTokenCookies(c, accessToken)

	response.Success(c, gin.H{"accessToken": accessToken})
}

// VerifyEmail consumes a verification code
func VerifyEmail(c *gin.Context) {
	email := c.Query("email")
	code := c.Query("code")
	if email == "" || code == "" {
		response.BadRequest(c, "email and code are required")
		return
	}

	if err := services.VerifyGuestCode(email, code); err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}
	response.Success(c, nil)
}

// ResendVerificationCode mails a fresh code to the signed-in guest
func ResendVerificationCode(c *gin.Context) {
	guestID := c.GetUint("guestID")
	if err := services.RegenerateVerificationCode(guestID); err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, nil)
}

// GetProfile returns the signed-in guest's profile
func GetProfile(c *gin.Context) {
	guestID := c.GetUint("guestID")

	var guest models.Guest
	if err := config.DB.First(&guest, guestID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, dto.GuestProfileResponse{
		ID:          guest.ID,
		Name:        guest.Name,
		Email:       guest.Email,
		PhoneNumber: guest.PhoneNumber,
		Role:        guest.Role,
		Avatar:      guest.Avatar,
		Gender:      guest.Gender,
		DateOfBirth: guest.DateOfBirth,
		IsVerified:  guest.IsVerified,
		CreatedAt:   guest.CreatedAt,
		UpdatedAt:   guest.UpdatedAt,
	})
}

// UpdateProfile applies partial profile edits for the signed-in guest
func UpdateProfile(c *gin.Context) {
	guestID := c.GetUint("guestID")

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var guest models.Guest
	if err := config.DB.First(&guest, guestID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if req.Name != "" {
		guest.Name = req.Name
	}
	if req.PhoneNumber != "" {
		guest.PhoneNumber = req.PhoneNumber
	}
	if req.Avatar != "" {
		guest.Avatar = req.Avatar
	}
	if req.Gender != nil {
		guest.Gender = *req.Gender
	}
	if req.DateOfBirth != "" {
		if _, err := time.Parse("2006-01-02", req.DateOfBirth); err != nil {
			response.BadRequest(c, "dateOfBirth must be YYYY-MM-DD")
			return
		}
		guest.DateOfBirth = req.DateOfBirth
	}

	if err := config.DB.Save(&guest).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, nil)
}
