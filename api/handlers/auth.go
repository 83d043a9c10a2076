package handlers

import (
	"errors"
	"net/http"
	"yatube/services"

	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := userService.Register(c.Request.Context(), req.Username, req.FirstName, req.LastName, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user already exists"})
			return
		}
		ServerError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"username": user.Username, "id": user.ID})
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, err := userService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		ServerError(c)
		return
	}

	// Токен доступен и как cookie, и как Bearer
	c.SetCookie("auth_token", token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"token": token, "username": req.Username})
}

func Logout(c *gin.Context) {
	if err := userService.Logout(c.Request.Context(), c.GetInt64("user_id")); err != nil {
		ServerError(c)
		return
	}
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
