package services

import (
	"github.com/dgrijalva/jwt-go"

	"stayhub/errors"
)

// GetGuestIDFromToken verifies an access token and returns the guest id and
// role carried in its claims. Tokens with a bad signature, a wrong signing
// method or an expired window are rejected.
func GetGuestIDFromToken(tokenString string) (uint, int, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "unexpected signing method", nil)
		}
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "invalid token", err)
	}

	if claims.GuestInfo.GuestId == 0 {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "token carries no guest info", nil)
	}

	return claims.GuestInfo.GuestId, claims.GuestInfo.Role, nil
}

// GetIDFromToken extracts only the guest id from a bearer token
func GetIDFromToken(tokenString string) (uint, error) {
	id, _, err := GetGuestIDFromToken(tokenString)
	return id, err
}
