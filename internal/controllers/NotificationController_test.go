package controllers

import (
	"fitviz/internal/models"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifications_AddAndList(t *testing.T) {
	e := newEnv()
	nc := NewNotificationController(e.notifications)

	rr := do(nc.AddNotification, http.MethodPost, "/notifications", `{"title":"Stretch","message":"5 minutes","type":"workout"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	n := decode[models.Notification](t, rr)
	assert.False(t, n.Read)
	assert.Equal(t, testNow.UnixMilli(), n.Timestamp)

	list := decode[notificationsResponse](t, do(nc.GetNotifications, http.MethodGet, "/notifications", ""))
	assert.Equal(t, 1, list.UnreadCount)
	require.Len(t, list.Notifications, 1)
	assert.Equal(t, n.ID, list.Notifications[0].ID)
}

func TestNotifications_AddRejectsInvalid(t *testing.T) {
	e := newEnv()
	nc := NewNotificationController(e.notifications)

	for _, body := range []string{`{"title":"","type":"water"}`, `{"title":"x","type":"alarm"}`, `[]`} {
		rr := do(nc.AddNotification, http.MethodPost, "/notifications", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
	}
	assert.Empty(t, e.notifications.Notifications())
}

func TestNotifications_MarkReadOneAndAll(t *testing.T) {
	e := newEnv()
	nc := NewNotificationController(e.notifications)
	a := e.notifications.Add("A", "", models.NotificationGeneral)
	e.notifications.Add("B", "", models.NotificationGeneral)
	e.notifications.Add("C", "", models.NotificationGeneral)

	list := decode[notificationsResponse](t, do(nc.MarkRead, http.MethodPost, "/notifications/read?id="+a.ID, ""))
	assert.Equal(t, 2, list.UnreadCount)

	list = decode[notificationsResponse](t, do(nc.MarkRead, http.MethodPost, "/notifications/read?id=missing", ""))
	assert.Equal(t, 2, list.UnreadCount)

	list = decode[notificationsResponse](t, do(nc.MarkRead, http.MethodPost, "/notifications/read", ""))
	assert.Equal(t, 0, list.UnreadCount)
}

func TestNotifications_ClearOneAndAll(t *testing.T) {
	e := newEnv()
	nc := NewNotificationController(e.notifications)
	a := e.notifications.Add("A", "", models.NotificationGeneral)
	e.notifications.Add("B", "", models.NotificationGeneral)

	list := decode[notificationsResponse](t, do(nc.Clear, http.MethodPost, "/notifications/clear?id="+a.ID, ""))
	assert.Len(t, list.Notifications, 1)
	assert.Equal(t, 1, list.UnreadCount)

	list = decode[notificationsResponse](t, do(nc.Clear, http.MethodPost, "/notifications/clear", ""))
	assert.Empty(t, list.Notifications)
	assert.Equal(t, 0, list.UnreadCount)
}
