package services

import (
	"fmt"
	"time"

	"alwafi_go/database"
	"alwafi_go/models"
	"alwafi_go/services/notifications"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// FinesReminderService sends a weekly notification to every student who
// still carries unpaid fines, and prunes old read notifications.
type FinesReminderService struct {
	notifications *notifications.Service
}

func NewFinesReminderService() *FinesReminderService {
	return &FinesReminderService{notifications: notifications.NewService()}
}

// Start schedules the weekly reminder (Sunday 08:00) and a daily cleanup
// of notifications read more than 30 days ago.
func (frs *FinesReminderService) Start() {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	if _, err := c.AddFunc("0 8 * * 0", func() {
		if err := frs.RemindUnpaidFines(); err != nil {
			logrus.WithError(err).Warn("unpaid fines reminder run failed")
		}
	}); err != nil {
		logrus.WithError(err).Error("failed to schedule fines reminder")
		return
	}

	if _, err := c.AddFunc("30 3 * * *", func() {
		if err := frs.CleanupOldNotifications(30); err != nil {
			logrus.WithError(err).Warn("notification cleanup run failed")
		}
	}); err != nil {
		logrus.WithError(err).Error("failed to schedule notification cleanup")
		return
	}

	c.Start()
	logrus.Info("Fines reminder scheduler started")
}

// RemindUnpaidFines scans every active student and notifies those whose
// bag still holds unpaid fines.
func (frs *FinesReminderService) RemindUnpaidFines() error {
	var users []models.User
	if err := database.DB.Where("status = ?", "active").Find(&users).Error; err != nil {
		return fmt.Errorf("failed to list users for reminder: %v", err)
	}

	var notified int
	for i := range users {
		user := &users[i]
		bag, err := user.Bag()
		if err != nil {
			logrus.WithError(err).WithField("user_id", user.ID).Warn("skipping user with unreadable attributes")
			continue
		}
		if bag.Role != models.RoleStudent {
			continue
		}

		unpaid := 0
		for _, fine := range bag.Fines {
			if !fine.Paid {
				unpaid++
			}
		}
		if unpaid == 0 {
			continue
		}

		n := notifications.Queued(
			"Unpaid fines reminder",
			"تذكير بالغرامات غير المسددة",
			fmt.Sprintf("You have %d unpaid fine(s). Please settle them with the administration.", unpaid),
			fmt.Sprintf("لديك %d غرامة غير مسددة، يرجى تسويتها مع الإدارة.", unpaid),
			"warning",
		)
		if err := frs.notifications.EnqueueOrCreate([]uint{user.ID}, n); err != nil {
			logrus.WithError(err).WithField("user_id", user.ID).Warn("failed to queue fines reminder")
			continue
		}
		notified++
	}

	logrus.Infof("Fines reminder: notified %d students", notified)
	return nil
}

// CleanupOldNotifications hard-deletes notifications read more than
// daysOld days ago.
func (frs *FinesReminderService) CleanupOldNotifications(daysOld int) error {
	cutoff := time.Now().AddDate(0, 0, -daysOld)
	result := database.DB.Unscoped().
		Where("`read` = ? AND read_at IS NOT NULL AND read_at < ?", true, cutoff).
		Delete(&models.Notification{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete old notifications: %v", result.Error)
	}
	if result.RowsAffected > 0 {
		logrus.Infof("Deleted %d old notifications", result.RowsAffected)
	}
	return nil
}
