package models

import (
	"time"
)

type Tenant struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"type:varchar(255);not null" json:"name"`
	Phone   string  `gorm:"type:varchar(20);not null" json:"phone"`
	Email   *string `gorm:"type:varchar(255)" json:"email"`
	Address *string `gorm:"type:varchar(500)" json:"address"`

	LeaseStartDate Date    `gorm:"type:date;not null" json:"leaseStartDate"`
	LeaseEndDate   Date    `gorm:"type:date;not null;index" json:"leaseEndDate"`
	RentAmount     float64 `gorm:"type:decimal(10,2);not null" json:"monthlyRent"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
