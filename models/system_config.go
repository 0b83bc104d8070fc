package models

import "time"

const (
	ConfigRentReminderDays    = "rent_reminder_days"
	ConfigReminderOverdueDays = "reminder_overdue_days"
)

// SystemConfig is an operational parameter editable at runtime.
type SystemConfig struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	Key         string    `gorm:"column:config_key;type:varchar(100);uniqueIndex;not null" json:"key"`
	Value       string    `gorm:"column:config_value;type:varchar(255);not null" json:"value"`
	Description string    `gorm:"type:varchar(500)" json:"description"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (SystemConfig) TableName() string {
	return "system_configs"
}

// DefaultConfigs are inserted on first start when missing.
var DefaultConfigs = []SystemConfig{
	{Key: ConfigRentReminderDays, Value: "7", Description: "Days before lease end that a rent reminder is generated"},
	{Key: ConfigReminderOverdueDays, Value: "0", Description: "Days after lease end that a tenant keeps receiving daily reminders"},
}
