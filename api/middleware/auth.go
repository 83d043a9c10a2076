package middleware

import (
	"net/http"
	"strings"
	"yatube/services"

	"github.com/gin-gonic/gin"
)

const LoginURL = "/auth/login/"

var userService = services.NewUserService()

func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

// AuthRequired пускает дальше только авторизованных.
// Неавторизованный запрос уходит редиректом на логин, не 401.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.Redirect(http.StatusFound, LoginURL)
			c.Abort()
			return
		}

		user, err := userService.UserByToken(c.Request.Context(), token)
		if err != nil {
			c.Redirect(http.StatusFound, LoginURL)
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("username", user.Username)
		c.Next()
	}
}

// OptionalAuth подставляет пользователя, если токен валиден, и никогда не прерывает запрос
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := tokenFromRequest(c); token != "" {
			if user, err := userService.UserByToken(c.Request.Context(), token); err == nil {
				c.Set("user_id", user.ID)
				c.Set("username", user.Username)
			}
		}
		c.Next()
	}
}
