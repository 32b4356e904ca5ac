package controllers

import (
	"fitviz/internal/models"
	"fitviz/internal/services"
	"net/http"
)

type NotificationController struct {
	service services.NotificationServiceInterface
}

type notificationsResponse struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unreadCount"`
}

func NewNotificationController(service services.NotificationServiceInterface) *NotificationController {
	return &NotificationController{service: service}
}

func (nc *NotificationController) list(w http.ResponseWriter) {
	list, unread := nc.service.Snapshot()
	writeJSON(w, http.StatusOK, notificationsResponse{Notifications: list, UnreadCount: unread})
}

func (nc *NotificationController) GetNotifications(w http.ResponseWriter, r *http.Request) {
	nc.list(w)
}

func (nc *NotificationController) AddNotification(w http.ResponseWriter, r *http.Request) {
	var req notificationRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := validateStruct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, nc.service.Add(req.Title, req.Message, models.NotificationType(req.Type)))
}

// MarkRead marks the notification named by ?id=, or all of them when no id
// is given. Unknown ids are ignored.
func (nc *NotificationController) MarkRead(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("id"); id != "" {
		nc.service.MarkAsRead(id)
	} else {
		nc.service.MarkAllAsRead()
	}
	nc.list(w)
}

func (nc *NotificationController) Clear(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("id"); id != "" {
		nc.service.Clear(id)
	} else {
		nc.service.ClearAll()
	}
	nc.list(w)
}
