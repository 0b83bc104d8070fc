package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"rent-reminder-backend/services"
	"rent-reminder-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps a service error onto the response envelope.
// Unclassified errors are recorded on the context for the request logger.
func respondServiceError(c *gin.Context, err error, fallbackCode int, fallbackMessage string) {
	var validationErr *services.ValidationError
	var configErr *services.ConfigError

	switch {
	case errors.As(err, &validationErr):
		utils.RespondWithError(c, http.StatusBadRequest, utils.CodeInvalidInput, validationErr.Error())
	case errors.Is(err, services.ErrTenantNotFound):
		utils.RespondWithError(c, http.StatusNotFound, utils.CodeTenantNotFound, "Tenant not found")
	case errors.Is(err, services.ErrReminderNotFound):
		utils.RespondWithError(c, http.StatusNotFound, utils.CodeReminderNotFound, "Reminder not found")
	case errors.Is(err, services.ErrConfigNotFound):
		utils.RespondWithError(c, http.StatusNotFound, utils.CodeConfigNotFound, "Config not found")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.RespondWithError(c, http.StatusUnauthorized, utils.CodeUnauthorized, "Invalid credentials")
	case errors.As(err, &configErr):
		_ = c.Error(err)
		utils.RespondWithError(c, http.StatusInternalServerError, fallbackCode, "Invalid configuration: "+configErr.Error())
	default:
		_ = c.Error(err)
		utils.RespondWithError(c, http.StatusInternalServerError, fallbackCode, fallbackMessage)
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, utils.CodeInvalidInput, "Invalid ID format")
		return 0, false
	}
	return uint(id), true
}
