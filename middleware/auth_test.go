package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhub/errors"
	"stayhub/response"
	"stayhub/services"
)

func staffRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/staff", AuthMiddleware(2), func(c *gin.Context) {
		response.Success(c, nil)
	})
	return r
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := staffRouter()

	t.Run("missing token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doGet(r, "/staff", "").Code)
	})

	t.Run("staff token passes", func(t *testing.T) {
		token, err := services.GenerateToken(services.GuestInfo{GuestId: 1, Role: 2}, 60, true)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, doGet(r, "/staff", token).Code)
	})

	t.Run("guest token lacks the role", func(t *testing.T) {
		token, err := services.GenerateToken(services.GuestInfo{GuestId: 1, Role: 0}, 60, true)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, doGet(r, "/staff", token).Code)
	})

	t.Run("token signed with a foreign key is rejected", func(t *testing.T) {
		claims := &services.Claims{GuestInfo: services.GuestInfo{GuestId: 1, Role: 2}}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("guessed-key"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, doGet(r, "/staff", forged).Code)
	})
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/app", func(c *gin.Context) {
		_ = c.Error(errors.NewAppError(errors.ErrCodeValidation, "bad input", nil))
	})
	r.GET("/plain", func(c *gin.Context) {
		_ = c.Error(assert.AnError)
	})
	r.GET("/written", func(c *gin.Context) {
		response.Conflict(c, "taken")
		_ = c.Error(assert.AnError)
	})

	w := doGet(r, "/app", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bad input")

	assert.Equal(t, http.StatusInternalServerError, doGet(r, "/plain", "").Code)

	// a handler that already responded is left alone
	assert.Equal(t, http.StatusConflict, doGet(r, "/written", "").Code)
}
