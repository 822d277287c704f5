package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(secret))
	r.POST("/api/inquiries", func(c *gin.Context) { c.Status(http.StatusCreated) })
	r.GET("/api/leads", func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func signToken(t *testing.T, secret []byte, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": 42,
		"role_id": 20,
		"iat":     time.Now().Unix(),
		"exp":     exp.Unix(),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return s
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	r := testRouter([]byte("s3cret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	secret := []byte("s3cret")
	r := testRouter(secret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, secret, time.Now().Add(time.Hour)))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	secret := []byte("s3cret")
	r := testRouter(secret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, secret, time.Now().Add(-time.Hour)))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	r := testRouter([]byte("s3cret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, []byte("other"), time.Now().Add(time.Hour)))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// the public inquiry form must work without a session
func TestAuthMiddlewarePublicInquiryForm(t *testing.T) {
	r := testRouter([]byte("s3cret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/inquiries", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}
