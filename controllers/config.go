package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"rent-reminder-backend/services"
	"rent-reminder-backend/utils"

	"github.com/gin-gonic/gin"
)

// UpdateConfigInput takes the value as a JSON string or number.
type UpdateConfigInput struct {
	Value json.RawMessage `json:"value" binding:"required"`
}

func (in UpdateConfigInput) text() (string, bool) {
	raw := strings.TrimSpace(string(in.Value))
	if raw == "" || raw == "null" {
		return "", false
	}
	var s string
	if err := json.Unmarshal(in.Value, &s); err == nil {
		return s, true
	}
	var n json.Number
	if err := json.Unmarshal(in.Value, &n); err == nil {
		return n.String(), true
	}
	return "", false
}

type ConfigController struct {
	Configs *services.ConfigService
}

func (ctl *ConfigController) GetConfigs(c *gin.Context) {
	configs, err := ctl.Configs.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, utils.CodeInternal, "Failed to retrieve configs")
		return
	}
	utils.RespondWithData(c, http.StatusOK, configs, "Configs retrieved")
}

func (ctl *ConfigController) GetConfig(c *gin.Context) {
	cfg, err := ctl.Configs.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondServiceError(c, err, utils.CodeInternal, "Failed to retrieve config")
		return
	}
	utils.RespondWithData(c, http.StatusOK, cfg, "Config retrieved")
}

// UpdateConfig stores a new value for an existing key
func (ctl *ConfigController) UpdateConfig(c *gin.Context) {
	var input UpdateConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.CodeInvalidInput, "Invalid input: "+err.Error())
		return
	}
	value, ok := input.text()
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, utils.CodeInvalidInput, "value must be a string or a number")
		return
	}

	cfg, err := ctl.Configs.Update(c.Request.Context(), c.Param("key"), value)
	if err != nil {
		respondServiceError(c, err, utils.CodeInternal, "Failed to update config")
		return
	}
	utils.RespondWithData(c, http.StatusOK, cfg, "Config updated")
}
