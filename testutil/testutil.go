// Package testutil builds in-memory stores and fixed clocks for tests.
package testutil

import (
	"io"
	"testing"
	"time"

	"rent-reminder-backend/config"
	"rent-reminder-backend/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	AdminUsername = "admin"
	AdminPassword = "admin123"
)

// NewLogger returns a logger that writes nowhere.
func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// NewDB opens a private in-memory SQLite database with the full schema and
// the default rows.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.ConnectDB(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    "file::memory:?_foreign_keys=1",
	}, NewLogger())
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	require.NoError(t, models.Seed(db, AdminUsername, AdminPassword))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Clock is a settable clock.
type Clock struct {
	T time.Time
}

// At returns a clock standing at 10:30 on day in UTC.
func At(day string) *Clock {
	return &Clock{T: models.MustParseDate(day).In(time.UTC).Add(10*time.Hour + 30*time.Minute)}
}

func (c *Clock) Now() time.Time {
	return c.T
}

// Advance moves the clock forward by d days.
func (c *Clock) Advance(days int) {
	c.T = c.T.AddDate(0, 0, days)
}

// CreateTenant inserts a tenant whose lease ends on leaseEnd.
func CreateTenant(t *testing.T, db *gorm.DB, name string, leaseEnd models.Date) *models.Tenant {
	t.Helper()
	tenant := &models.Tenant{
		Name:           name,
		Phone:          "13800138000",
		LeaseStartDate: leaseEnd.AddDays(-365),
		LeaseEndDate:   leaseEnd,
		RentAmount:     3500,
	}
	require.NoError(t, db.Create(tenant).Error)
	return tenant
}

// SetConfig overwrites a system config value.
func SetConfig(t *testing.T, db *gorm.DB, key, value string) {
	t.Helper()
	require.NoError(t, db.Model(&models.SystemConfig{}).
		Where("config_key = ?", key).
		Update("config_value", value).Error)
}
