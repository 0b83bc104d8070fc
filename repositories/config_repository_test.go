package repositories_test

import (
	"context"
	"testing"

	"rent-reminder-backend/models"
	"rent-reminder-backend/repositories"
	"rent-reminder-backend/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigRepositorySeededDefaults(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repositories.NewConfigRepository(db)
	ctx := context.Background()

	configs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, configs, 2)
	assert.Equal(t, models.ConfigReminderOverdueDays, configs[0].Key)
	assert.Equal(t, models.ConfigRentReminderDays, configs[1].Key)

	cfg, err := repo.Get(ctx, models.ConfigRentReminderDays)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "7", cfg.Value)

	missing, err := repo.Get(ctx, "no_such_key")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestConfigRepositoryUpdateValue(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repositories.NewConfigRepository(db)
	ctx := context.Background()

	updated, err := repo.UpdateValue(ctx, models.ConfigRentReminderDays, "14")
	require.NoError(t, err)
	assert.True(t, updated)

	cfg, err := repo.Get(ctx, models.ConfigRentReminderDays)
	require.NoError(t, err)
	assert.Equal(t, "14", cfg.Value)

	updated, err = repo.UpdateValue(ctx, "no_such_key", "1")
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestSeedKeepsExistingValues(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SetConfig(t, db, models.ConfigRentReminderDays, "3")

	require.NoError(t, models.Seed(db, testutil.AdminUsername, "other"))

	cfg, err := repositories.NewConfigRepository(db).Get(context.Background(), models.ConfigRentReminderDays)
	require.NoError(t, err)
	assert.Equal(t, "3", cfg.Value)

	var admins int64
	require.NoError(t, db.Model(&models.Admin{}).Count(&admins).Error)
	assert.Equal(t, int64(1), admins)
}
