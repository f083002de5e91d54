package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/joseeugenio/portfolio-backend/internal/service"
)

// SessionCookieName — имя cookie с сессионным токеном администратора.
const SessionCookieName = "admin_token"

// ContextAdminKey — ключ gin.Context с subject проверенного токена.
const ContextAdminKey = "admin"

// RequireAdmin проверяет сессионный токен из cookie. Это единственная
// авторитетная проверка: редиректы ниже — только эвристика для страниц.
func RequireAdmin(tokens *service.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "требуется авторизация"})
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "токен невалиден"})
			return
		}

		c.Set(ContextAdminKey, claims.Subject)
		c.Next()
	}
}

// RedirectIfAnonymous редиректит навигацию по /admin* на страницу логина,
// если cookie отсутствует. Проверяется только наличие cookie, без подписи:
// это ускорение UX, данные админки всё равно ходят через RequireAdmin.
func RedirectIfAnonymous() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(SessionCookieName); err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login?from="+url.QueryEscape(c.Request.URL.Path))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectIfAuthenticated уводит залогиненного администратора со страницы
// логина обратно в админку.
func RedirectIfAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
			c.Redirect(http.StatusFound, "/admin")
			c.Abort()
			return
		}
		c.Next()
	}
}
