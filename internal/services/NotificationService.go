package services

import (
	"fitviz/internal/models"
	"fitviz/internal/providers"
	"fitviz/internal/storage/interfaces"
	"slices"
	"sync"
)

type NotificationServiceInterface interface {
	Add(title, message string, kind models.NotificationType) models.Notification
	MarkAsRead(id string)
	MarkAllAsRead()
	Clear(id string)
	ClearAll()
	Notifications() []models.Notification
	UnreadCount() int
	Snapshot() ([]models.Notification, int)
}

// NotificationService keeps the inbox newest first. unread is a cache of
// the number of unread entries and is only ever assigned by recount.
type NotificationService struct {
	mu      sync.Mutex
	store   interfaces.StoreInterface
	clock   providers.Clock
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
	newID   func() string

	notifications []models.Notification
	unread        int
}

func NewNotificationService(store interfaces.StoreInterface, clock providers.Clock, logger providers.Logger, metrics providers.MetricsProviderInterface) NotificationServiceInterface {
	ns := &NotificationService{
		store:   store,
		clock:   clock,
		logger:  logger,
		metrics: metrics,
		newID:   newID,
	}
	ns.notifications = loadDocument(store, logger, KeyNotifications, models.DefaultNotifications)
	ns.recount()
	return ns
}

func (ns *NotificationService) Add(title, message string, kind models.NotificationType) models.Notification {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	n := models.Notification{
		ID:        ns.newID(),
		Title:     title,
		Message:   message,
		Timestamp: ns.clock.Now().UnixMilli(),
		Type:      kind,
		Read:      false,
	}
	ns.notifications = append([]models.Notification{n}, ns.notifications...)
	ns.commit("addNotification")
	ns.logger.Infof(providers.TypeApp, "Notification %s added: %s", n.Type, n.Title)
	return n
}

func (ns *NotificationService) MarkAsRead(id string) {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	i := ns.indexOf(id)
	if i < 0 {
		return
	}
	ns.notifications[i].Read = true
	ns.commit("markAsRead")
}

func (ns *NotificationService) MarkAllAsRead() {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	for i := range ns.notifications {
		ns.notifications[i].Read = true
	}
	ns.commit("markAllAsRead")
}

func (ns *NotificationService) Clear(id string) {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	i := ns.indexOf(id)
	if i < 0 {
		return
	}
	ns.notifications = slices.Delete(ns.notifications, i, i+1)
	ns.commit("clearNotification")
}

func (ns *NotificationService) ClearAll() {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	ns.notifications = []models.Notification{}
	ns.commit("clearAllNotifications")
}

func (ns *NotificationService) Notifications() []models.Notification {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	return slices.Clone(ns.notifications)
}

func (ns *NotificationService) UnreadCount() int {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	return ns.unread
}

// Snapshot returns the list and its unread count as of the same mutation.
func (ns *NotificationService) Snapshot() ([]models.Notification, int) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	return slices.Clone(ns.notifications), ns.unread
}

func (ns *NotificationService) indexOf(id string) int {
	return slices.IndexFunc(ns.notifications, func(n models.Notification) bool { return n.ID == id })
}

// commit persists the list and refreshes the unread count. Callers hold mu.
func (ns *NotificationService) commit(operation string) {
	ns.metrics.IncMutations(operation)
	saveDocument(ns.store, ns.logger, KeyNotifications, ns.notifications)
	ns.recount()
}

func (ns *NotificationService) recount() {
	unread := 0
	for _, n := range ns.notifications {
		if !n.Read {
			unread++
		}
	}
	ns.unread = unread
	ns.metrics.SetUnreadNotifications(unread)
}
