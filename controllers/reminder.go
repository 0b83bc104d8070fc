// controllers/reminder.go
package controllers

import (
	"fmt"
	"net/http"
	"time"

	"rent-reminder-backend/models"
	"rent-reminder-backend/repositories"
	"rent-reminder-backend/services"
	"rent-reminder-backend/utils"

	"github.com/gin-gonic/gin"
)

type ListRemindersQuery struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	TenantID  uint   `form:"tenantId"`
	Status    string `form:"status"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

type ReminderController struct {
	Reminders *services.ReminderService
}

// TriggerReminders runs one reminder pass on demand
func (ctl *ReminderController) TriggerReminders(c *gin.Context) {
	result, err := ctl.Reminders.TriggerReminders(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, utils.CodeTriggerFailed, "Reminder trigger failed")
		return
	}

	utils.RespondWithData(c, http.StatusOK, result,
		fmt.Sprintf("Reminders triggered, %d sent", result.SentCount))
}

// GetReminders lists reminders with their tenant details
func (ctl *ReminderController) GetReminders(c *gin.Context) {
	var query ListRemindersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.CodeInvalidInput, "Invalid query: "+err.Error())
		return
	}

	filter := repositories.ReminderFilter{
		TenantID: query.TenantID,
		Status:   models.ReminderStatus(query.Status),
		SortBy:   sortKey(query.SortBy),
		SortDesc: query.SortOrder != "asc",
	}
	filter.Page, filter.Limit = services.NormalizePage(query.Page, query.Limit)

	var err error
	if query.StartDate != "" {
		if filter.From, err = models.ParseDate(query.StartDate); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, utils.CodeInvalidInput, "Invalid startDate: "+err.Error())
			return
		}
	}
	if query.EndDate != "" {
		if filter.To, err = models.ParseDate(query.EndDate); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, utils.CodeInvalidInput, "Invalid endDate: "+err.Error())
			return
		}
	}

	items, total, err := ctl.Reminders.ListReminders(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err, utils.CodeInternal, "Failed to retrieve reminders")
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{
		"total": total,
		"page":  filter.Page,
		"limit": filter.Limit,
		"items": items,
	}, "Reminders retrieved")
}

// UpdateReminderStatus changes the status of one reminder
func (ctl *ReminderController) UpdateReminderStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, utils.CodeInvalidInput, "Invalid input: "+err.Error())
		return
	}

	reminder, err := ctl.Reminders.UpdateStatus(c.Request.Context(), id, models.ReminderStatus(input.Status))
	if err != nil {
		respondServiceError(c, err, utils.CodeInternal, "Failed to update reminder status")
		return
	}

	utils.RespondWithData(c, http.StatusOK, struct {
		ID       uint                  `json:"id"`
		Status   models.ReminderStatus `json:"status"`
		SendTime *time.Time            `json:"sendTime"`
	}{reminder.ID, reminder.Status, reminder.SendTime}, "Reminder status updated")
}

// GetPendingCount returns how many reminders are still pending
func (ctl *ReminderController) GetPendingCount(c *gin.Context) {
	count, err := ctl.Reminders.PendingCount(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, utils.CodeInternal, "Failed to count pending reminders")
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{"count": count}, "Pending reminders counted")
}
