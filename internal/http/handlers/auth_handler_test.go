package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseeugenio/portfolio-backend/internal/http/middleware"
	"github.com/joseeugenio/portfolio-backend/internal/service"
)

func newAuthTestRouter() (*gin.Engine, *service.TokenManager) {
	gin.SetMode(gin.TestMode)
	tokens := service.NewTokenManager("test-secret", time.Hour)
	auth := service.NewAuthService("admin@example.com", "secret123", "", tokens)
	handler := NewAuthHandler(auth, tokens, false)

	r := gin.New()
	r.POST("/api/auth/login", handler.Login)
	r.POST("/api/auth/logout", handler.Logout)
	return r, tokens
}

// sessionCookie ищет cookie с сессионным токеном в ответе.
func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_LoginSuccessSetsCookie(t *testing.T) {
	r, tokens := newAuthTestRouter()

	payload := `{"email":"admin@example.com","password":"secret123"}`
	req, _ := http.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	// Токен из cookie должен проходить авторитетную проверку
	claims, err := tokens.Verify(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Subject)
}

// Дефолтный admin@localhost без TLD — вход должен работать, адрес
// сверяет сам сервис, а не валидатор формата.
func TestAuthHandler_LoginAcceptsLocalEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := service.NewTokenManager("test-secret", time.Hour)
	auth := service.NewAuthService("admin@localhost", "secret123", "", tokens)
	handler := NewAuthHandler(auth, tokens, false)

	r := gin.New()
	r.POST("/api/auth/login", handler.Login)

	payload := `{"email":"admin@localhost","password":"secret123"}`
	req, _ := http.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, sessionCookie(w))
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	r, _ := newAuthTestRouter()

	payload := `{"email":"admin@example.com","password":"wrong"}`
	req, _ := http.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, sessionCookie(w))
}

func TestAuthHandler_LoginMissingFields(t *testing.T) {
	r, _ := newAuthTestRouter()

	req, _ := http.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(`{"email":"admin@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, sessionCookie(w))
}

func TestAuthHandler_LogoutClearsCookie(t *testing.T) {
	r, _ := newAuthTestRouter()

	req, _ := http.NewRequest("POST", "/api/auth/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
