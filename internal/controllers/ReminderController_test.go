package controllers

import (
	"fitviz/internal/models"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminders_DailyFiresIntoInbox(t *testing.T) {
	e := newEnv()
	rc := NewReminderController(&mockLogger{}, e.scheduler)

	rr := do(rc.AddReminder, http.MethodPost, "/reminders", `{"title":"Lunch","message":"Log your meal","type":"nutrition","at":"12:00"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	info := decode[models.ReminderInfo](t, rr)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), info.NextFire.UTC())

	e.clock.Advance(3 * time.Hour)

	list := e.notifications.Notifications()
	require.Len(t, list, 1)
	assert.Equal(t, "Lunch", list[0].Title)
	assert.Equal(t, models.NotificationNutrition, list[0].Type)
}

func TestReminders_IntervalAndList(t *testing.T) {
	e := newEnv()
	rc := NewReminderController(&mockLogger{}, e.scheduler)

	rr := do(rc.AddReminder, http.MethodPost, "/reminders", `{"title":"Water","type":"water","intervalMinutes":30}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	list := decode[[]models.ReminderInfo](t, do(rc.GetReminders, http.MethodGet, "/reminders", ""))
	require.Len(t, list, 1)
	assert.Equal(t, 30*time.Minute, list[0].Interval)
}

func TestReminders_RejectsInvalid(t *testing.T) {
	e := newEnv()
	rc := NewReminderController(&mockLogger{}, e.scheduler)
	bodies := []string{
		`{"title":"x","type":"water"}`,
		`{"title":"x","type":"water","at":"08:00","intervalMinutes":5}`,
		`{"title":"x","type":"water","at":"8am"}`,
		`{"title":"x","type":"water","intervalMinutes":-5}`,
		`{"title":"","type":"water","at":"08:00"}`,
		`{"title":"x","type":"beer","at":"08:00"}`,
	}
	for _, body := range bodies {
		rr := do(rc.AddReminder, http.MethodPost, "/reminders", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
	}
	assert.Empty(t, e.scheduler.List())
}

func TestReminders_Cancel(t *testing.T) {
	e := newEnv()
	rc := NewReminderController(&mockLogger{}, e.scheduler)
	info, err := e.scheduler.ScheduleEvery(time.Minute, models.Reminder{Title: "x", Type: models.NotificationGeneral})
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, do(rc.CancelReminder, http.MethodPost, "/reminders/cancel", "").Code)
	assert.Equal(t, http.StatusNotFound, do(rc.CancelReminder, http.MethodPost, "/reminders/cancel?id=nope", "").Code)
	assert.Equal(t, http.StatusNoContent, do(rc.CancelReminder, http.MethodPost, "/reminders/cancel?id="+info.ID, "").Code)

	e.clock.Advance(time.Hour)
	assert.Empty(t, e.notifications.Notifications())
}
