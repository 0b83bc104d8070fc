// utils/response.go
package utils

import (
	"github.com/gin-gonic/gin"
)

// Error codes understood by the browser client.
const (
	CodeInvalidInput     = 1001
	CodeUnauthorized     = 1002
	CodeRouteNotFound    = 1004
	CodeInternal         = 1005
	CodeTenantNotFound   = 2001
	CodeTriggerFailed    = 2002
	CodeReminderNotFound = 3001
	CodeConfigNotFound   = 4001
)

// Envelope is the body of every API response.
type Envelope struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data"`
	Message   string      `json:"message"`
	ErrorCode *int        `json:"error_code"`
}

func RespondWithData(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, Envelope{Success: true, Data: data, Message: message})
}

func RespondWithError(c *gin.Context, status int, code int, message string) {
	c.AbortWithStatusJSON(status, Envelope{Success: false, Message: message, ErrorCode: &code})
}
