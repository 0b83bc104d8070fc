// services/reminder_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"rent-reminder-backend/models"
	"rent-reminder-backend/repositories"
	"rent-reminder-backend/utils"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const (
	DefaultReminderDays = 7
	DefaultOverdueDays  = 0
)

type ReminderService struct {
	configs   repositories.ConfigRepository
	tenants   repositories.TenantRepository
	reminders repositories.ReminderRepository
	clock     Clock
	log       *logrus.Logger

	cron *cron.Cron
}

func NewReminderService(
	configs repositories.ConfigRepository,
	tenants repositories.TenantRepository,
	reminders repositories.ReminderRepository,
	clock Clock,
	log *logrus.Logger,
) *ReminderService {
	return &ReminderService{
		configs:   configs,
		tenants:   tenants,
		reminders: reminders,
		clock:     clock,
		log:       log,
	}
}

// TriggerResult summarizes one trigger pass. StartDate and EndDate are the
// closed window of lease end dates that was scanned.
type TriggerResult struct {
	SentCount    int         `json:"sentCount"`
	SkippedCount int         `json:"skippedCount"`
	ReminderDays int         `json:"reminderDays"`
	OverdueDays  int         `json:"overdueDays"`
	StartDate    models.Date `json:"startDate"`
	EndDate      models.Date `json:"endDate"`
}

// TriggerReminders creates one pending reminder for every tenant whose lease
// ends inside [today-overdueDays, today+reminderDays] and who has no reminder
// for today yet.
//
// Reminders are inserted one by one. When an insert fails the rows written
// before it stay; a rerun on the same day only fills in the missing tenants.
func (s *ReminderService) TriggerReminders(ctx context.Context) (*TriggerResult, error) {
	log := s.log.WithField("run_id", uuid.NewString())

	reminderDays, err := s.intSetting(ctx, models.ConfigRentReminderDays, DefaultReminderDays)
	if err != nil {
		return nil, err
	}
	overdueDays, err := s.intSetting(ctx, models.ConfigReminderOverdueDays, DefaultOverdueDays)
	if err != nil {
		return nil, err
	}

	today := Today(s.clock)
	result := &TriggerResult{
		ReminderDays: reminderDays,
		OverdueDays:  overdueDays,
		StartDate:    today.AddDays(-overdueDays),
		EndDate:      today.AddDays(reminderDays),
	}

	tenants, err := s.tenants.ListLeaseEndingBetween(ctx, result.StartDate, result.EndDate)
	if err != nil {
		return nil, storageErr("list tenants due", err)
	}

	for _, tenant := range tenants {
		exists, err := s.reminders.ExistsForDay(ctx, tenant.ID, today)
		if err != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"tenant_id":  tenant.ID,
				"sent_count": result.SentCount,
			}).Error("Failed to check existing reminder")
			return nil, storageErr("check reminder", err)
		}
		if exists {
			result.SkippedCount++
			continue
		}

		reminder := &models.Reminder{
			TenantID:     tenant.ID,
			Content:      reminderContent(tenant, today),
			Status:       models.ReminderPending,
			ReminderDate: today,
		}
		created, err := s.reminders.Insert(ctx, reminder)
		if err != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"tenant_id":  tenant.ID,
				"sent_count": result.SentCount,
			}).Error("Failed to insert reminder")
			return nil, storageErr("insert reminder", err)
		}
		if !created {
			// another trigger got there first
			result.SkippedCount++
			continue
		}
		result.SentCount++
	}

	log.WithFields(logrus.Fields{
		"sent_count":    result.SentCount,
		"skipped_count": result.SkippedCount,
		"start_date":    result.StartDate.String(),
		"end_date":      result.EndDate.String(),
	}).Info("Reminder trigger completed")
	return result, nil
}

func (s *ReminderService) intSetting(ctx context.Context, key string, def int) (int, error) {
	cfg, err := s.configs.Get(ctx, key)
	if err != nil {
		return 0, storageErr("read config "+key, err)
	}
	if cfg == nil {
		return def, nil
	}
	return ParseSetting(key, cfg.Value)
}

func reminderContent(tenant models.Tenant, today models.Date) string {
	days := utils.DaysBetween(today.In(time.UTC), tenant.LeaseEndDate.In(time.UTC))
	switch {
	case days > 0:
		return fmt.Sprintf("Dear %s, your rent of %.2f is due on %s (in %s). Please pay on time.",
			tenant.Name, tenant.RentAmount, tenant.LeaseEndDate, pluralDays(days))
	case days == 0:
		return fmt.Sprintf("Dear %s, your rent of %.2f is due today (%s). Please pay on time.",
			tenant.Name, tenant.RentAmount, tenant.LeaseEndDate)
	default:
		return fmt.Sprintf("Dear %s, your rent of %.2f was due on %s (%s ago). Please pay as soon as possible.",
			tenant.Name, tenant.RentAmount, tenant.LeaseEndDate, pluralDays(-days))
	}
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// ListReminders returns one page of reminders with their tenant details.
func (s *ReminderService) ListReminders(ctx context.Context, filter repositories.ReminderFilter) ([]models.ReminderView, int64, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, invalid("status", fmt.Sprintf("unknown status %q", filter.Status))
	}
	filter.Page, filter.Limit = NormalizePage(filter.Page, filter.Limit)
	items, total, err := s.reminders.List(ctx, filter)
	if err != nil {
		return nil, 0, storageErr("list reminders", err)
	}
	return items, total, nil
}

// UpdateStatus moves a reminder to status. Moving to sent records the send
// time.
func (s *ReminderService) UpdateStatus(ctx context.Context, id uint, status models.ReminderStatus) (*models.Reminder, error) {
	if !status.Valid() {
		return nil, invalid("status", fmt.Sprintf("unknown status %q", status))
	}

	reminder, err := s.reminders.Get(ctx, id)
	if err != nil {
		return nil, storageErr("get reminder", err)
	}
	if reminder == nil {
		return nil, ErrReminderNotFound
	}

	var sendTime *time.Time
	if status == models.ReminderSent {
		now := s.clock.Now()
		sendTime = &now
	}
	updated, err := s.reminders.UpdateStatus(ctx, id, status, sendTime)
	if err != nil {
		return nil, storageErr("update reminder status", err)
	}
	if !updated {
		return nil, ErrReminderNotFound
	}

	reminder.Status = status
	if sendTime != nil {
		reminder.SendTime = sendTime
	}
	return reminder, nil
}

func (s *ReminderService) PendingCount(ctx context.Context) (int64, error) {
	count, err := s.reminders.CountByStatus(ctx, models.ReminderPending)
	if err != nil {
		return 0, storageErr("count pending reminders", err)
	}
	return count, nil
}
