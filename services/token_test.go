package services

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/errors"
)

func TestGetGuestIDFromToken(t *testing.T) {
	token, err := GenerateToken(GuestInfo{GuestId: 7, Role: 2}, 60, true)
	require.NoError(t, err)

	guestID, role, err := GetGuestIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), guestID)
	assert.Equal(t, 2, role)
}

func TestGetGuestIDFromTokenRejectsForgedSignature(t *testing.T) {
	claims := &Claims{GuestInfo: GuestInfo{GuestId: 7, Role: 2}}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("not-the-server-key"))
	require.NoError(t, err)

	_, _, err = GetGuestIDFromToken(forged)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidToken, errors.GetAppError(err).Code)
}

func TestGetGuestIDFromTokenRejectsTamperedClaims(t *testing.T) {
	token, err := GenerateToken(GuestInfo{GuestId: 7, Role: 0}, 60, true)
	require.NoError(t, err)

	// swap the payload for one claiming a staff role, keep the old signature
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload, err := json.Marshal(map[string]interface{}{
		"guestinfo": map[string]interface{}{"guestid": 7, "role": 2},
	})
	require.NoError(t, err)
	parts[1] = jwt.EncodeSegment(payload)

	_, _, err = GetGuestIDFromToken(strings.Join(parts, "."))
	assert.Error(t, err)
}

func TestGetGuestIDFromTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken(GuestInfo{GuestId: 7, Role: 0}, -5, true)
	require.NoError(t, err)

	_, _, err = GetGuestIDFromToken(token)
	assert.Error(t, err)
}

func TestGetGuestIDFromTokenRejectsGarbage(t *testing.T) {
	for _, tok := range []string{"", "abc", "a.b.c"} {
		_, _, err := GetGuestIDFromToken(tok)
		assert.Error(t, err, "token %q", tok)
	}
}
