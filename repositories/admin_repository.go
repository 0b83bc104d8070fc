package repositories

import (
	"context"
	"errors"
	"time"

	"rent-reminder-backend/models"

	"gorm.io/gorm"
)

type AdminRepository interface {
	// FindByUsername returns nil when no such account exists.
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	TouchLastLogin(ctx context.Context, id uint, at time.Time) error
}

type adminRepo struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepo) TouchLastLogin(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&models.Admin{}).Where("id = ?", id).Update("last_login", at).Error
}
