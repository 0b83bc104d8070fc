// models/reminder.go
package models

import (
	"time"
)

type ReminderStatus string

const (
	ReminderPending  ReminderStatus = "pending"
	ReminderSent     ReminderStatus = "sent"
	ReminderFailed   ReminderStatus = "failed"
	ReminderCanceled ReminderStatus = "canceled"
	ReminderPaid     ReminderStatus = "paid"
)

func (s ReminderStatus) Valid() bool {
	switch s {
	case ReminderPending, ReminderSent, ReminderFailed, ReminderCanceled, ReminderPaid:
		return true
	}
	return false
}

// Reminder is one rent reminder for a tenant. ReminderDate is the calendar
// day the reminder was generated for; at most one row exists per tenant and
// day.
type Reminder struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	TenantID     uint           `gorm:"not null;uniqueIndex:idx_reminder_tenant_day,priority:1" json:"tenantId"`
	Tenant       *Tenant        `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"-"`
	Content      string         `gorm:"type:text;not null" json:"content"`
	Status       ReminderStatus `gorm:"type:varchar(50);not null;default:'pending';index" json:"status"`
	ReminderDate Date           `gorm:"type:date;not null;uniqueIndex:idx_reminder_tenant_day,priority:2" json:"reminderDate"`
	SendTime     *time.Time     `json:"sendTime"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// ReminderView is a reminder joined with the owning tenant, as listed to
// operators.
type ReminderView struct {
	ID           uint           `json:"id"`
	TenantID     uint           `json:"tenantId"`
	TenantName   string         `json:"tenantName"`
	TenantPhone  string         `json:"tenantPhone"`
	Amount       float64        `json:"amount"`
	Content      string         `json:"content"`
	Status       ReminderStatus `json:"status"`
	LeaseEndDate Date           `json:"reminderDate"`
	SendTime     *time.Time     `json:"sendTime"`
	CreatedAt    time.Time      `json:"createdAt"`
}
