package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "appsettings.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := writeSettings(t, `
service:
  port: 9090
  timezone: UTC
database:
  driver: sqlite
  dsn: "file::memory:"
scheduler:
  enabled: true
  cron: "30 8 * * *"
`)
	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Service.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry())
	assert.Equal(t, "admin", cfg.Auth.AdminUsername)
	assert.Equal(t, "30 8 * * *", cfg.Scheduler.Cron)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	dir := writeSettings(t, `
database:
  driver: sqlite
  dsn: "file::memory:"
`)
	t.Setenv("RENT_SERVICE_PORT", "7001")
	t.Setenv("RENT_AUTH_JWT_SECRET", "from-env")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 7001, cfg.Service.Port)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
}

func TestLoadConfigRejects(t *testing.T) {
	tests := map[string]string{
		"driver":   "database:\n  driver: mysql\n  dsn: x\nauth:\n  jwt_secret: s\n",
		"dsn":      "database:\n  driver: sqlite\n",
		"secret":   "database:\n  driver: postgres\n  dsn: host=localhost\n",
		"timezone": "service:\n  timezone: Mars/Olympus\ndatabase:\n  driver: sqlite\n  dsn: x\n",
		"cron":     "database:\n  driver: sqlite\n  dsn: x\nscheduler:\n  enabled: true\n  cron: every day\n",
		"port":     "service:\n  port: 70000\ndatabase:\n  driver: sqlite\n  dsn: x\n",
		"mode":     "service:\n  mode: production\ndatabase:\n  driver: sqlite\n  dsn: x\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeSettings(t, body))
			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger(LogConfig{Level: "debug", Format: "text"})
	require.NoError(t, err)
	assert.Equal(t, "debug", log.GetLevel().String())

	_, err = NewLogger(LogConfig{Level: "loud"})
	assert.Error(t, err)
	_, err = NewLogger(LogConfig{Level: "info", Format: "xml"})
	assert.Error(t, err)
}
