package cmd

import (
	"fmt"

	"rent-reminder-backend/config"
	"rent-reminder-backend/models"
	"rent-reminder-backend/repositories"
	"rent-reminder-backend/services"
	"rent-reminder-backend/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// app holds the wired components shared by every command.
type app struct {
	cfg   *config.Config
	log   *logrus.Logger
	db    *gorm.DB
	clock services.Clock

	auth      *services.AuthService
	tenants   *services.TenantService
	reminders *services.ReminderService
	configs   *services.ConfigService
}

func newApp() (*app, error) {
	cfg, err := config.LoadConfig(settingsPath)
	if err != nil {
		return nil, err
	}

	log, err := config.NewLogger(cfg.Log)
	if err != nil {
		return nil, err
	}

	if cfg.Auth.JWTSecret == "" {
		// only reachable with the sqlite driver
		cfg.Auth.JWTSecret = utils.GenerateJWTSecret()
		log.Warn("auth.jwt_secret not set, using a random secret; tokens will not survive a restart")
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	db, err := config.ConnectDB(cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	clock := services.NewSystemClock(loc)
	configRepo := repositories.NewConfigRepository(db)
	tenantRepo := repositories.NewTenantRepository(db)
	reminderRepo := repositories.NewReminderRepository(db)
	adminRepo := repositories.NewAdminRepository(db)

	return &app{
		cfg:       cfg,
		log:       log,
		db:        db,
		clock:     clock,
		auth:      services.NewAuthService(adminRepo, cfg.Auth.JWTSecret, cfg.JWTExpiry(), clock),
		tenants:   services.NewTenantService(tenantRepo),
		reminders: services.NewReminderService(configRepo, tenantRepo, reminderRepo, clock, log),
		configs:   services.NewConfigService(configRepo),
	}, nil
}

// migrate brings the schema up to date and inserts the default rows.
func (a *app) migrate() error {
	if err := models.AutoMigrate(a.db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := models.Seed(a.db, a.cfg.Auth.AdminUsername, a.cfg.Auth.AdminPassword); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
