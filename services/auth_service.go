package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/smtp"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"

	"stayhub/config"
	apperrors "stayhub/errors"
	"stayhub/models"
)

type GuestInfo struct {
	GuestId uint `json:"guestid"`
	Role    int  `json:"role"`
}

type Claims struct {
	GuestInfo GuestInfo `json:"guestinfo"`
	jwt.StandardClaims
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
var refreshSecretKey = []byte(config.GetEnv("SECRET_KEY_REFRESH_TOKEN"))

func GenerateToken(guestInfo GuestInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	claims := &Claims{
		GuestInfo: guestInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if isAccessToken {
		return token.SignedString(secretKey)
	}
	return token.SignedString(refreshSecretKey)
}

func SetTokenCookies(c *gin.Context, accessToken string) {
	c.SetCookie(
		"access_token",
		accessToken,
		3*24*60*60,
		"/",
		"",
		true,
		false,
	)
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func CheckPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

func generateVerificationCode() (string, error) {
	code := ""
	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += n.String()
	}
	return code, nil
}

func GetGuestByEmail(email string) (models.Guest, error) {
	var guest models.Guest
	result := config.DB.Where("email = ?", email).First(&guest)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return guest, apperrors.ErrGuestNotFound
	}
	if result.Error != nil {
		return guest, result.Error
	}
	return guest, nil
}

func GetGuestByPhoneNumber(phoneNumber string) (models.Guest, error) {
	var guest models.Guest
	result := config.DB.Where("phone_number = ?", phoneNumber).First(&guest)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return guest, apperrors.ErrGuestNotFound
	}
	if result.Error != nil {
		return guest, result.Error
	}
	return guest, nil
}

// CreateGuest registers a new account, hashes the password and mails the
// verification code
func CreateGuest(input models.Guest) (models.Guest, error) {
	if input.Email == "" || input.Password == "" || input.PhoneNumber == "" {
		return models.Guest{}, errors.New("email, password and phone are required")
	}

	if _, err := GetGuestByEmail(input.Email); err == nil {
		return models.Guest{}, apperrors.ErrGuestAlreadyExists
	}
	if _, err := GetGuestByPhoneNumber(input.PhoneNumber); err == nil {
		return models.Guest{}, apperrors.ErrGuestAlreadyExists
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.Guest{}, err
	}

	code, err := generateVerificationCode()
	if err != nil {
		return models.Guest{}, err
	}

	guest := models.Guest{
		Name:          input.Name,
		Email:         input.Email,
		Password:      hashedPassword,
		PhoneNumber:   input.PhoneNumber,
		Role:          input.Role,
		IsVerified:    false,
		Code:          code,
		CodeCreatedAt: time.Now(),
	}

	if result := config.DB.Create(&guest); result.Error != nil {
		return guest, result.Error
	}

	if err := sendVerificationEmail(guest.Email, code); err != nil {
		return guest, err
	}
	return guest, nil
}

// VerifyGuestCode checks a verification code and marks the account verified.
// Codes older than 15 minutes are rejected.
func VerifyGuestCode(email, code string) error {
	guest, err := GetGuestByEmail(email)
	if err != nil {
		return err
	}
	if guest.Code != code {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidCode, "verification code does not match", nil)
	}
	if time.Since(guest.CodeCreatedAt) > 15*time.Minute {
		return apperrors.NewAppError(apperrors.ErrCodeExpiredCode, "verification code has expired", nil)
	}

	guest.IsVerified = true
	guest.Code = ""
	return config.DB.Save(&guest).Error
}

// RegenerateVerificationCode issues a fresh code and mails it
func RegenerateVerificationCode(guestID uint) error {
	var guest models.Guest
	result := config.DB.First(&guest, guestID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return apperrors.ErrGuestNotFound
	}
	if result.Error != nil {
		return result.Error
	}

	newCode, err := generateVerificationCode()
	if err != nil {
		return fmt.Errorf("cannot generate verification code: %v", err)
	}

	guest.Code = newCode
	guest.CodeCreatedAt = time.Now()
	if err := config.DB.Save(&guest).Error; err != nil {
		return err
	}
	return sendVerificationEmail(guest.Email, newCode)
}

// VerifyGoogleCredential validates a Google ID token and returns the payload
// claims. Audience comes from GOOGLE_CLIENT_ID.
func VerifyGoogleCredential(ctx context.Context, credential string) (map[string]interface{}, error) {
	payload, err := idtoken.Validate(ctx, credential, config.GetEnv("GOOGLE_CLIENT_ID"))
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "invalid google credential", err)
	}
	return payload.Claims, nil
}

func smtpConfig() (from, password, host, port string) {
	return config.GetEnv("SMTP_FROM"),
		config.GetEnv("SMTP_PASSWORD"),
		config.EnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
		config.EnvOrDefault("SMTP_PORT", "587")
}

func sendMail(to []string, subject, body string) error {
	from, password, host, port := smtpConfig()

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" +
		"Subject: " + subject + "\r\n\r\n" + body)

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}

func sendVerificationEmail(email, code string) error {
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head><meta charset="UTF-8"><title>Verify your account</title></head>
		<body>
			<p>Hello %s,</p>
			<p>Your one-time verification code is: <strong>%s</strong></p>
			<p>If you did not request this code you can safely ignore this email.</p>
			<p>Thanks,<br>The accounts team</p>
		</body>
		</html>
	`, email, code)
	return sendMail([]string{email}, "Your one-time verification code", body)
}

// SendBookingEmail confirms a booking by mail
func SendBookingEmail(email string, bookingID uint, totalPrice float64, checkInDate, checkOutDate string) error {
	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head><meta charset="UTF-8"><title>Booking confirmed</title></head>
	<body>
		<p>Hello,</p>
		<p>Your booking has been placed.</p>
		<ul>
			<li>Booking number: <strong>%d</strong></li>
			<li>Check-in: <strong>%s</strong></li>
			<li>Check-out: <strong>%s</strong></li>
			<li>Total: <strong>%.2f</strong></li>
		</ul>
		<p>We will let you know when anything about your booking changes.</p>
		<p>Thanks,<br>The support team</p>
	</body>
	</html>`, bookingID, checkInDate, checkOutDate, totalPrice)
	return sendMail([]string{email}, "Booking confirmed", body)
}
