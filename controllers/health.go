package controllers

import (
	"net/http"

	"rent-reminder-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

// Health reports whether the database answers.
func (ctl *HealthController) Health(c *gin.Context) {
	sqlDB, err := ctl.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		_ = c.Error(err)
		utils.RespondWithError(c, http.StatusServiceUnavailable, utils.CodeInternal, "Database unavailable")
		return
	}
	utils.RespondWithData(c, http.StatusOK, gin.H{"status": "ok"}, "Service is healthy")
}
