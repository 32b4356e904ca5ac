package reminders

import (
	"errors"
	"fitviz/internal/models"
	"fitviz/internal/providers"
	"fitviz/internal/reminders/interfaces"
	"fitviz/internal/services"
	"fitviz/internal/structures"
	"fmt"
	"github.com/google/uuid"
	"go.uber.org/atomic"
	"sort"
	"sync"
	"time"
)

const timeOfDayLayout = "15:04"

var (
	ErrInvalidTime     = errors.New("time of day must be HH:MM")
	ErrInvalidInterval = errors.New("interval must be positive")
)

type job struct {
	info      models.ReminderInfo
	hour      int
	minute    int
	timer     providers.Timer
	cancelled atomic.Bool
}

// Scheduler posts reminder notifications on daily or fixed-interval
// schedules. Schedules live in memory only; a restart forgets them.
type Scheduler struct {
	config        *structures.Config
	clock         providers.Clock
	logger        providers.Logger
	metrics       providers.MetricsProviderInterface
	notifications services.NotificationServiceInterface

	// opsMu serialises firing with scheduling and cancellation, so a
	// cancelled job can never post after Cancel returns.
	opsMu sync.Mutex
	jobs  map[string]*job
}

func NewScheduler(config *structures.Config, clock providers.Clock, logger providers.Logger, metrics providers.MetricsProviderInterface, notifications services.NotificationServiceInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:        config,
		clock:         clock,
		logger:        logger,
		metrics:       metrics,
		notifications: notifications,
		jobs:          make(map[string]*job),
	}
}

// Init schedules the reminders listed in the configuration.
func (s *Scheduler) Init() {
	for _, rc := range s.config.Reminders {
		r := models.Reminder{Title: rc.Title, Message: rc.Message, Type: models.NotificationType(rc.Type)}

		var err error
		if rc.At != "" {
			_, err = s.ScheduleDaily(rc.At, r)
		} else {
			_, err = s.ScheduleEvery(rc.Interval, r)
		}
		if err != nil {
			s.logger.Errorf(providers.TypeReminder, "Skip configured reminder %q: %s", rc.Title, err)
		}
	}
}

func (s *Scheduler) Stop() {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	for id, j := range s.jobs {
		s.cancelLocked(id, j)
	}
}

// ScheduleDaily fires at the given time of day in the clock's timezone:
// today if that moment is still ahead, otherwise tomorrow, then once a day.
func (s *Scheduler) ScheduleDaily(at string, reminder models.Reminder) (models.ReminderInfo, error) {
	t, err := time.Parse(timeOfDayLayout, at)
	if err != nil {
		return models.ReminderInfo{}, fmt.Errorf("%w: %q", ErrInvalidTime, at)
	}

	j := &job{
		info:   models.ReminderInfo{ID: uuid.NewString(), Reminder: reminder, At: at},
		hour:   t.Hour(),
		minute: t.Minute(),
	}

	s.opsMu.Lock()
	defer s.opsMu.Unlock()
	s.jobs[j.info.ID] = j
	s.arm(j, NextDaily(s.clock.Now(), j.hour, j.minute))
	s.logger.Infof(providers.TypeReminder, "Reminder %s scheduled daily at %s, first at %s", j.info.ID, at, j.info.NextFire.Format(time.RFC3339))
	return j.info, nil
}

// ScheduleEvery fires one interval from now and then every interval.
func (s *Scheduler) ScheduleEvery(interval time.Duration, reminder models.Reminder) (models.ReminderInfo, error) {
	if interval <= 0 {
		return models.ReminderInfo{}, ErrInvalidInterval
	}

	j := &job{info: models.ReminderInfo{ID: uuid.NewString(), Reminder: reminder, Interval: interval}}

	s.opsMu.Lock()
	defer s.opsMu.Unlock()
	s.jobs[j.info.ID] = j
	s.arm(j, s.clock.Now().Add(interval))
	s.logger.Infof(providers.TypeReminder, "Reminder %s scheduled every %s", j.info.ID, interval)
	return j.info, nil
}

// Cancel stops the reminder and reports whether it existed.
func (s *Scheduler) Cancel(id string) bool {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	j, ok := s.jobs[id]
	if !ok {
		return false
	}
	s.cancelLocked(id, j)
	s.logger.Infof(providers.TypeReminder, "Reminder %s cancelled", id)
	return true
}

func (s *Scheduler) List() []models.ReminderInfo {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	out := make([]models.ReminderInfo, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, j.info)
	}
	sort.Slice(out, func(a, b int) bool {
		if !out[a].NextFire.Equal(out[b].NextFire) {
			return out[a].NextFire.Before(out[b].NextFire)
		}
		return out[a].ID < out[b].ID
	})
	return out
}

func (s *Scheduler) cancelLocked(id string, j *job) {
	j.cancelled.Store(true)
	if j.timer != nil {
		j.timer.Stop()
	}
	delete(s.jobs, id)
}

func (s *Scheduler) arm(j *job, next time.Time) {
	j.info.NextFire = next
	wait := max(next.Sub(s.clock.Now()), 0)
	j.timer = s.clock.AfterFunc(wait, func() { s.fire(j) })
}

func (s *Scheduler) fire(j *job) {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	// the timer may have expired while Cancel was waiting for the lock
	if j.cancelled.Load() {
		return
	}

	r := j.info.Reminder
	s.notifications.Add(r.Title, r.Message, r.Type)
	s.metrics.IncRemindersFired(string(r.Type))

	s.arm(j, s.nextAfterFire(j))
	s.logger.Debugf(providers.TypeReminder, "Reminder %s fired, next at %s", j.info.ID, j.info.NextFire.Format(time.RFC3339))
}

// nextAfterFire returns the first occurrence after now. A late wake-up, after
// a suspend or a clock jump, skips the missed occurrences instead of posting
// one notification for each.
func (s *Scheduler) nextAfterFire(j *job) time.Time {
	now := s.clock.Now()
	if now.Before(j.info.NextFire) {
		now = j.info.NextFire
	}
	if j.info.Interval <= 0 {
		return NextDaily(now, j.hour, j.minute)
	}
	missed := now.Sub(j.info.NextFire) / j.info.Interval
	return j.info.NextFire.Add((missed + 1) * j.info.Interval)
}

// NextDaily returns the first hour:minute strictly after now, in now's
// location. Consecutive occurrences are one calendar day apart, which is 24
// hours except across a DST change.
func NextDaily(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
