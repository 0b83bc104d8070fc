package repositories

import (
	"context"
	"errors"
	"time"

	"rent-reminder-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReminderFilter selects one page of reminders. From and To bound the
// reminder day and are ignored when zero.
type ReminderFilter struct {
	TenantID uint
	Status   models.ReminderStatus
	From     models.Date
	To       models.Date
	SortBy   string
	SortDesc bool
	Page     int
	Limit    int
}

var ReminderSortFields = map[string]string{
	"id":             "reminders.id",
	"tenant_id":      "reminders.tenant_id",
	"status":         "reminders.status",
	"amount":         "tenants.rent_amount",
	"lease_end_date": "tenants.lease_end_date",
	"reminder_date":  "reminders.reminder_date",
	"created_at":     "reminders.created_at",
	"send_time":      "reminders.send_time",
}

type ReminderRepository interface {
	ExistsForDay(ctx context.Context, tenantID uint, day models.Date) (bool, error)
	// Insert reports false when a reminder for the same tenant and day
	// already exists; nothing is written in that case.
	Insert(ctx context.Context, reminder *models.Reminder) (bool, error)
	// Get returns nil when the reminder does not exist.
	Get(ctx context.Context, id uint) (*models.Reminder, error)
	List(ctx context.Context, filter ReminderFilter) ([]models.ReminderView, int64, error)
	UpdateStatus(ctx context.Context, id uint, status models.ReminderStatus, sendTime *time.Time) (bool, error)
	CountByStatus(ctx context.Context, status models.ReminderStatus) (int64, error)
}

type reminderRepo struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepo{db: db}
}

func (r *reminderRepo) ExistsForDay(ctx context.Context, tenantID uint, day models.Date) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Reminder{}).
		Where("tenant_id = ? AND reminder_date = ?", tenantID, day).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *reminderRepo) Insert(ctx context.Context, reminder *models.Reminder) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "reminder_date"}},
			DoNothing: true,
		}).
		Omit(clause.Associations).
		Create(reminder)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *reminderRepo) Get(ctx context.Context, id uint) (*models.Reminder, error) {
	var reminder models.Reminder
	err := r.db.WithContext(ctx).First(&reminder, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reminder, nil
}

func (r *reminderRepo) List(ctx context.Context, filter ReminderFilter) ([]models.ReminderView, int64, error) {
	query := r.db.WithContext(ctx).Table("reminders").
		Joins("LEFT JOIN tenants ON tenants.id = reminders.tenant_id")
	if filter.TenantID != 0 {
		query = query.Where("reminders.tenant_id = ?", filter.TenantID)
	}
	if filter.Status != "" {
		query = query.Where("reminders.status = ?", filter.Status)
	}
	if !filter.From.IsZero() {
		query = query.Where("reminders.reminder_date >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("reminders.reminder_date <= ?", filter.To)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := ReminderSortFields[filter.SortBy]
	if !ok {
		column = "reminders.created_at"
	}
	order := column + " ASC"
	if filter.SortDesc {
		order = column + " DESC"
	}

	var views []models.ReminderView
	err := query.Select(`reminders.id, reminders.tenant_id,
		tenants.name AS tenant_name, tenants.phone AS tenant_phone,
		tenants.rent_amount AS amount, reminders.content, reminders.status,
		tenants.lease_end_date AS lease_end_date, reminders.send_time, reminders.created_at`).
		Order(order).Order("reminders.id DESC").
		Limit(filter.Limit).
		Offset((filter.Page - 1) * filter.Limit).
		Scan(&views).Error
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

func (r *reminderRepo) UpdateStatus(ctx context.Context, id uint, status models.ReminderStatus, sendTime *time.Time) (bool, error) {
	updates := map[string]interface{}{"status": status}
	if sendTime != nil {
		updates["send_time"] = *sendTime
	}
	result := r.db.WithContext(ctx).Model(&models.Reminder{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *reminderRepo) CountByStatus(ctx context.Context, status models.ReminderStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Reminder{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
