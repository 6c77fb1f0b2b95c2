// controllers/auth.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fixtrack-backend/config"
	"fixtrack-backend/services"
	"fixtrack-backend/utils"
)

type AuthController struct {
	auth           *services.AuthService
	jwtSecret      string
	jwtExpiryHours int
}

func NewAuthController(auth *services.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{
		auth:           auth,
		jwtSecret:      cfg.JWT.Secret,
		jwtExpiryHours: cfg.JWT.ExpirationHours,
	}
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates a staff member and issues a JWT. The failure message is
// the same whether the username or the password was wrong.
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	admin, err := ac.auth.Authenticate(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid username or password")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	token, err := utils.GenerateToken(admin.ID.String(), ac.jwtSecret, ac.jwtExpiryHours)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
			"email":    admin.Email,
		},
	})
}

// Me returns the authenticated staff identity.
func (ac *AuthController) Me(c *gin.Context) {
	adminID, exists := c.Get("adminId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Admin ID not found in context")
		return
	}

	adminUUID, err := uuid.Parse(adminID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid admin ID format")
		return
	}

	admin, err := ac.auth.GetAdmin(adminUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Admin not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"admin": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
			"email":    admin.Email,
		},
	})
}
