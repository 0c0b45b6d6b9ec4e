package scheduler

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/Danokhov/pro-mnemo-app/pkg/models"
	"github.com/go-co-op/gocron"
)

// Default window of hours during which reminders may be sent
const (
	DefaultNotificationStartHour = 8
	DefaultNotificationEndHour   = 22
)

// DueCounter answers how many study items a user has due right now.
// There is no change-notification primitive in the store, so the poller
// simply re-queries on a schedule.
type DueCounter interface {
	DueCount(ctx context.Context, userID string, now time.Time) (int, error)
}

// UserSource lists users who opted into reminders
type UserSource interface {
	GetNotifiable(ctx context.Context) ([]models.User, error)
}

// Notifier delivers a due-items reminder to a user
type Notifier interface {
	SendReminder(userID string, count int) error
}

// Scheduler periodically checks every notifiable user's due set and
// pushes a reminder when something is waiting
type Scheduler struct {
	scheduler *gocron.Scheduler
	due       DueCounter
	users     UserSource
	notifier  Notifier
}

// New creates a new scheduler instance
func New(due DueCounter, users UserSource, notifier Notifier) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		due:       due,
		users:     users,
		notifier:  notifier,
	}
}

// Start begins the hourly reminder check without blocking
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Hour().Do(s.checkAndSendReminders)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkAndSendReminders queries due counts for all notifiable users and
// sends reminders inside the configured hours
func (s *Scheduler) checkAndSendReminders() {
	currentHour := time.Now().Hour()

	startHour := envHour("NOTIFICATION_START_HOUR", DefaultNotificationStartHour)
	endHour := envHour("NOTIFICATION_END_HOUR", DefaultNotificationEndHour)

	if currentHour < startHour || currentHour > endHour {
		log.Printf("Current hour %d is outside notification hours (%d-%d), skipping reminders",
			currentHour, startHour, endHour)
		return
	}

	ctx := context.Background()
	users, err := s.users.GetNotifiable(ctx)
	if err != nil {
		log.Printf("Error getting users for notification: %v", err)
		return
	}

	now := time.Now()
	for _, user := range users {
		count, err := s.due.DueCount(ctx, user.ID, now)
		if err != nil {
			log.Printf("Error getting due count for user %s: %v", user.ID, err)
			continue
		}
		if count == 0 {
			continue
		}
		if err := s.notifier.SendReminder(user.ID, count); err != nil {
			log.Printf("Error sending reminder to user %s: %v", user.ID, err)
		}
	}
}

// RunManualCheck forces a due check for a specific user
func (s *Scheduler) RunManualCheck(ctx context.Context, userID string) error {
	count, err := s.due.DueCount(ctx, userID, time.Now())
	if err != nil {
		return err
	}
	if count > 0 {
		return s.notifier.SendReminder(userID, count)
	}
	return nil
}

// envHour reads an hour-of-day override from the environment
func envHour(name string, fallback int) int {
	if v := os.Getenv(name); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			return h
		}
	}
	return fallback
}
