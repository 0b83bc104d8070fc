package models

import (
	"rent-reminder-backend/utils"
	"time"

	"gorm.io/gorm"
)

// Admin is an operator account. Password holds a bcrypt hash once saved.
type Admin struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Username  string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Password  string     `gorm:"type:varchar(255);not null" json:"-"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (Admin) TableName() string {
	return "admin"
}

// Hash the plain password before creating
func (a *Admin) BeforeCreate(tx *gorm.DB) (err error) {
	hashed, err := utils.HashPassword(a.Password)
	if err != nil {
		return err
	}
	a.Password = hashed
	return
}
