package repositories

import (
	"context"
	"errors"

	"rent-reminder-backend/models"

	"gorm.io/gorm"
)

type ConfigRepository interface {
	// Get returns nil when the key does not exist.
	Get(ctx context.Context, key string) (*models.SystemConfig, error)
	List(ctx context.Context) ([]models.SystemConfig, error)
	// UpdateValue reports false when the key does not exist.
	UpdateValue(ctx context.Context, key, value string) (bool, error)
}

type configRepo struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) ConfigRepository {
	return &configRepo{db: db}
}

func (r *configRepo) Get(ctx context.Context, key string) (*models.SystemConfig, error) {
	var cfg models.SystemConfig
	err := r.db.WithContext(ctx).Where("config_key = ?", key).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *configRepo) List(ctx context.Context) ([]models.SystemConfig, error) {
	var configs []models.SystemConfig
	if err := r.db.WithContext(ctx).Order("config_key").Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

func (r *configRepo) UpdateValue(ctx context.Context, key, value string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.SystemConfig{}).
		Where("config_key = ?", key).
		Update("config_value", value)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
