// controllers/auth.go
package controllers

import (
	"net/http"

	"rent-reminder-backend/services"
	"rent-reminder-backend/utils"

	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Auth *services.AuthService
}

// Login verifies operator credentials and issues a bearer token
func (ctl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.CodeInvalidInput, "Username and password are required")
		return
	}

	result, err := ctl.Auth.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		respondServiceError(c, err, utils.CodeInternal, "Login failed")
		return
	}

	utils.RespondWithData(c, http.StatusOK, result, "Login successful")
}
