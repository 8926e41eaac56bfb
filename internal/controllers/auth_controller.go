package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dreamjournal-be/internal/middleware"
	"dreamjournal-be/internal/models"
	"dreamjournal-be/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register handles POST /auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail("Please provide name, email and password"))
		return
	}

	response, err := ac.authService.Register(&req)
	if err != nil {
		handleServiceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusCreated, models.OKMessage("User registered successfully", response))
}

// Login handles POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail("Please provide email and password"))
		return
	}

	response, err := ac.authService.Login(&req)
	if err != nil {
		handleServiceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, models.OKMessage("Login successful", response))
}

// Me handles GET /auth/me - returns the authenticated user's public view
func (ac *AuthController) Me(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	user, err := ac.authService.GetMe(userID)
	if err != nil {
		handleServiceError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, models.OK(user))
}
