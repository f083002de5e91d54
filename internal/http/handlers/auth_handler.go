package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joseeugenio/portfolio-backend/internal/http/middleware"
	"github.com/joseeugenio/portfolio-backend/internal/service"
)

// AuthHandler предоставляет HTTP слой для входа и выхода администратора.
type AuthHandler struct {
	auth         *service.AuthService
	tokenManager *service.TokenManager
	secureCookie bool
}

// NewAuthHandler создаёт хэндлер.
func NewAuthHandler(auth *service.AuthService, tokenManager *service.TokenManager, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		auth:         auth,
		tokenManager: tokenManager,
		secureCookie: secureCookie,
	}
}

// Login обрабатывает POST /api/auth/login.
// При успехе ставит HTTP-only cookie с сессионным токеном.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "требуются email и пароль"})
		return
	}

	token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.Error(err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.SessionCookieName,
		token,
		int(h.tokenManager.TTL().Seconds()),
		"/",
		"",
		h.secureCookie,
		true,
	)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout обрабатывает POST /api/auth/logout: просто стирает cookie.
// Сам токен отозвать нельзя, он доживёт до истечения срока.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
