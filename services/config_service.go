package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"rent-reminder-backend/models"
	"rent-reminder-backend/repositories"
)

// settingMinimum holds the smallest accepted value of each integer setting.
var settingMinimum = map[string]int{
	models.ConfigRentReminderDays:    1,
	models.ConfigReminderOverdueDays: 0,
}

// ParseSetting parses the stored value of an integer setting and enforces
// its lower bound.
func ParseSetting(key, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &ConfigError{Key: key, Value: value, Reason: "not an integer"}
	}
	if floor, ok := settingMinimum[key]; ok && n < floor {
		reason := "must be a positive integer"
		if floor == 0 {
			reason = "must not be negative"
		}
		return 0, &ConfigError{Key: key, Value: value, Reason: reason}
	}
	return n, nil
}

type ConfigService struct {
	configs repositories.ConfigRepository
}

func NewConfigService(configs repositories.ConfigRepository) *ConfigService {
	return &ConfigService{configs: configs}
}

func (s *ConfigService) Get(ctx context.Context, key string) (*models.SystemConfig, error) {
	cfg, err := s.configs.Get(ctx, key)
	if err != nil {
		return nil, storageErr("get config", err)
	}
	if cfg == nil {
		return nil, ErrConfigNotFound
	}
	return cfg, nil
}

func (s *ConfigService) List(ctx context.Context) ([]models.SystemConfig, error) {
	configs, err := s.configs.List(ctx)
	if err != nil {
		return nil, storageErr("list configs", err)
	}
	return configs, nil
}

// Update stores a new value for an existing key. Integer settings are
// validated before anything is written.
func (s *ConfigService) Update(ctx context.Context, key, value string) (*models.SystemConfig, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, invalid("value", "value is required")
	}
	if _, ok := settingMinimum[key]; ok {
		if _, err := ParseSetting(key, value); err != nil {
			var cfgErr *ConfigError
			if errors.As(err, &cfgErr) {
				return nil, invalid("value", cfgErr.Reason)
			}
			return nil, err
		}
	}

	updated, err := s.configs.UpdateValue(ctx, key, value)
	if err != nil {
		return nil, storageErr("update config", err)
	}
	if !updated {
		return nil, ErrConfigNotFound
	}
	return s.Get(ctx, key)
}
