package interfaces

import (
	"fitviz/internal/models"
	"time"
)

type SchedulerInterface interface {
	Init()
	Stop()
	ScheduleDaily(at string, reminder models.Reminder) (models.ReminderInfo, error)
	ScheduleEvery(interval time.Duration, reminder models.Reminder) (models.ReminderInfo, error)
	Cancel(id string) bool
	List() []models.ReminderInfo
}
