package repositories_test

import (
	"context"
	"testing"
	"time"

	"rent-reminder-backend/models"
	"rent-reminder-backend/repositories"
	"rent-reminder-backend/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReminder(tenantID uint, day models.Date) *models.Reminder {
	return &models.Reminder{
		TenantID:     tenantID,
		Content:      "rent due",
		Status:       models.ReminderPending,
		ReminderDate: day,
	}
}

func TestReminderInsertIsUniquePerTenantAndDay(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repositories.NewReminderRepository(db)
	ctx := context.Background()
	today := models.MustParseDate("2024-06-10")
	tenant := testutil.CreateTenant(t, db, "Alice", today.AddDays(3))

	created, err := repo.Insert(ctx, newReminder(tenant.ID, today))
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Insert(ctx, newReminder(tenant.ID, today))
	require.NoError(t, err)
	assert.False(t, created)

	created, err = repo.Insert(ctx, newReminder(tenant.ID, today.AddDays(1)))
	require.NoError(t, err)
	assert.True(t, created)

	var count int64
	require.NoError(t, db.Model(&models.Reminder{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	exists, err := repo.ExistsForDay(ctx, tenant.ID, today)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsForDay(ctx, tenant.ID, today.AddDays(2))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestReminderListJoinsTenant(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repositories.NewReminderRepository(db)
	ctx := context.Background()
	day := models.MustParseDate("2024-06-10")

	alice := testutil.CreateTenant(t, db, "Alice", day.AddDays(2))
	bob := testutil.CreateTenant(t, db, "Bob", day.AddDays(5))
	for _, r := range []*models.Reminder{
		newReminder(alice.ID, day),
		newReminder(alice.ID, day.AddDays(1)),
		newReminder(bob.ID, day.AddDays(1)),
	} {
		_, err := repo.Insert(ctx, r)
		require.NoError(t, err)
	}

	items, total, err := repo.List(ctx, repositories.ReminderFilter{TenantID: alice.ID, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	assert.Equal(t, "Alice", items[0].TenantName)
	assert.Equal(t, alice.Phone, items[0].TenantPhone)
	assert.Equal(t, 3500.0, items[0].Amount)
	assert.Equal(t, alice.LeaseEndDate, items[0].LeaseEndDate)

	items, total, err = repo.List(ctx, repositories.ReminderFilter{
		From:  day.AddDays(1),
		To:    day.AddDays(1),
		Page:  1,
		Limit: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, items, 2)

	items, total, err = repo.List(ctx, repositories.ReminderFilter{
		SortBy: "id",
		Page:   2,
		Limit:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 1)
	assert.Equal(t, "Bob", items[0].TenantName)
}

func TestReminderUpdateStatus(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repositories.NewReminderRepository(db)
	ctx := context.Background()
	day := models.MustParseDate("2024-06-10")
	tenant := testutil.CreateTenant(t, db, "Alice", day)

	reminder := newReminder(tenant.ID, day)
	_, err := repo.Insert(ctx, reminder)
	require.NoError(t, err)

	sentAt := time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)
	updated, err := repo.UpdateStatus(ctx, reminder.ID, models.ReminderSent, &sentAt)
	require.NoError(t, err)
	assert.True(t, updated)

	got, err := repo.Get(ctx, reminder.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.ReminderSent, got.Status)
	require.NotNil(t, got.SendTime)
	assert.True(t, sentAt.Equal(*got.SendTime))

	pending, err := repo.CountByStatus(ctx, models.ReminderPending)
	require.NoError(t, err)
	assert.Zero(t, pending)

	updated, err = repo.UpdateStatus(ctx, 9999, models.ReminderPaid, nil)
	require.NoError(t, err)
	assert.False(t, updated)

	missing, err := repo.Get(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
